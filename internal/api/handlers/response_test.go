package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Confirmed bool `json:"confirmed"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"confirmed":true,"extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"confirmed":true}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.True(t, dst.Confirmed)
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondValidationError(rec, "проверьте поля", map[string]string{"phone": "required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "проверьте поля", body.Error)
	assert.Equal(t, map[string]string{"phone": "required"}, body.Fields)
}

func TestRespondLocked(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondLocked(rec, "locked")

	assert.Equal(t, http.StatusLocked, rec.Code)
	assert.JSONEq(t, `{"error":"locked"}`, rec.Body.String())
}

func TestFromSnapshot(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	expires := time.Date(2025, 10, 20, 12, 5, 0, 0, time.UTC)

	snap := &flow.Snapshot{
		FlowID: "flow-1",
		Step:   flow.StepPayment,
		Draft: &domain.BookingDraft{
			FieldID:     "f-1",
			SlotID:      "slot-18",
			SlotLabel:   "18:00-19:00",
			Date:        date,
			BasePrice:   200000,
			IsRecurring: true,
			Recurrence: domain.RecurrenceConfig{
				StartDate:  date,
				WeekdaySet: []time.Weekday{time.Monday, time.Wednesday},
				WeekCount:  4,
			},
			Pricing: domain.PricingBreakdown{SessionCount: 8, Total: 1440000, DepositAmount: 432000},
		},
		Sessions:      []domain.Session{{Date: date, SlotLabel: "18:00-19:00"}},
		Record:        &domain.BookingRecord{BookingID: "b-1", QRArtifact: "https://qr"},
		Lock:          &domain.PaymentLock{ExpiresAt: expires},
		LockRemaining: 1500 * time.Millisecond,
	}

	resp := FromSnapshot(snap)

	require.NotNil(t, resp)
	assert.Equal(t, "payment", resp.Step)
	assert.True(t, resp.Locked)
	assert.Equal(t, 2, resp.LockRemainingSeconds)
	require.NotNil(t, resp.LockExpiresAt)
	assert.Equal(t, expires, *resp.LockExpiresAt)
	assert.Equal(t, "2025-10-20", resp.Draft.Date)
	assert.Equal(t, []int{1, 3}, resp.Draft.Recurrence.Weekdays)
	assert.Equal(t, int64(432000), resp.Pricing.DepositAmount)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "2025-10-20", resp.Sessions[0].Date)
	assert.Equal(t, "b-1", resp.Booking.BookingID)
	assert.Equal(t, "https://qr", resp.Booking.QRCode)
}

func TestFromSnapshot_NoLock(t *testing.T) {
	resp := FromSnapshot(&flow.Snapshot{FlowID: "flow-1", Step: flow.StepDetails})

	assert.False(t, resp.Locked)
	assert.Nil(t, resp.LockExpiresAt)
	assert.Zero(t, resp.LockRemainingSeconds)
	assert.Nil(t, resp.Booking)
	assert.NotNil(t, resp.Sessions)
}
