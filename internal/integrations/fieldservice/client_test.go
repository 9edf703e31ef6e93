package fieldservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, nopLogger{})
}

func TestCheckAvailability(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/fields/f-1/availability", r.URL.Path)
		assert.Equal(t, "2025-10-20", r.URL.Query().Get("date"))
		assert.Equal(t, "slot-18", r.URL.Query().Get("slotId"))
		_ = json.NewEncoder(w).Encode(AvailabilityResponse{Available: false, Message: "Слот занят"})
	})

	got, err := c.CheckAvailability(context.Background(), "f-1", time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), "slot-18")
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, "Слот занят", got.Message)
}

func TestCreateBooking(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "f-1", body.FieldID)
		assert.Len(t, body.Sessions, 2)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"bookingId":"b-1","scheduleId":"s-1","bookingStatus":"pending","paymentStatus":"unpaid","qrCode":"iVBOR","totalPrice":400000}`))
	})

	resp, err := c.CreateBooking(context.Background(), &CreateBookingRequest{
		FieldID:  "f-1",
		Sessions: []SessionPayload{{Date: "2025-10-20"}, {Date: "2025-10-27"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.BookingID)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, int64(400000), *resp.TotalPrice)
	assert.Nil(t, resp.DepositAmount)
}

func TestCreateBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "conflict", status: http.StatusConflict, body: `{"message":"taken"}`, wantErr: ErrSlotConflict},
		{name: "duration limit", status: http.StatusUnprocessableEntity, body: `{"code":"duration_limit_exceeded","message":"too long"}`, wantErr: ErrDurationLimitExceeded},
		{name: "slot conflict code", status: http.StatusBadRequest, body: `{"code":"slot_conflict"}`, wantErr: ErrSlotConflict},
		{name: "bad request", status: http.StatusBadRequest, body: `{"code":"other"}`, wantErr: ErrInvalidResponse},
		{name: "server error", status: http.StatusInternalServerError, body: `boom`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.CreateBooking(context.Background(), &CreateBookingRequest{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListSchedules_SkipsBadDates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"s-1","fieldId":"f-1","slotId":"slot-18","date":"2025-10-20","available":true},{"id":"s-2","date":"20.10.2025"}]`))
	})

	got, err := c.ListSchedules(context.Background(), "f-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s-1", got[0].ID)
	assert.True(t, got[0].Matches("slot-18", time.Date(2025, 10, 20, 15, 0, 0, 0, time.UTC)))
}

func TestGetBankAccount_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetBankAccountByOwner(context.Background(), "owner-1")
	assert.ErrorIs(t, err, ErrBankAccountNotFound)
}
