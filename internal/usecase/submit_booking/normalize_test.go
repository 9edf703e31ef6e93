package submit_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/integrations/fieldservice"
	"github.com/m04kA/SMC-FieldBookingService/pkg/ptr"
)

func TestNormalizeQR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "iVBORw0KGgo", want: "data:image/png;base64,iVBORw0KGgo"},
		{in: "  iVBORw0KGgo\n", want: "data:image/png;base64,iVBORw0KGgo"},
		{in: "https://pay.example/qr.png", want: "https://pay.example/qr.png"},
		{in: "HTTP://pay.example/qr.png", want: "HTTP://pay.example/qr.png"},
		{in: "data:image/svg+xml;base64,PHN2Zz4=", want: "data:image/svg+xml;base64,PHN2Zz4="},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeQR(tt.in), tt.in)
	}
}

func TestToRecord_LocalFallback(t *testing.T) {
	local := domain.PricingBreakdown{Total: 100_000, DepositAmount: 50_000, RemainingAmount: 50_000}

	rec := toRecord(&fieldservice.BookingResponse{BookingID: "b-1", BookingStatus: "weird"}, "s-1", local)
	assert.Equal(t, "s-1", rec.ScheduleID)
	assert.Equal(t, domain.StatusPending, rec.BookingStatus)
	assert.Equal(t, domain.PaymentUnpaid, rec.PaymentStatus)
	assert.Equal(t, int64(100_000), rec.TotalPrice)
	assert.Equal(t, int64(50_000), rec.DepositAmount)
	assert.Equal(t, int64(50_000), rec.RemainingAmount)
	assert.Nil(t, rec.QRExpiresAt)

	rec = toRecord(&fieldservice.BookingResponse{
		BookingID:     "b-1",
		PaymentStatus: "PAID",
		DepositAmount: ptr.Ptr(int64(120_000)),
		QRExpiresAt:   ptr.Ptr("not a date"),
	}, "s-1", local)
	assert.Equal(t, domain.PaymentPaid, rec.PaymentStatus)
	assert.Equal(t, int64(0), rec.RemainingAmount)
	assert.Nil(t, rec.QRExpiresAt)
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, isValidPhone("+7 (912) 345-67-89"))
	assert.True(t, isValidPhone("0912345678"))
	assert.False(t, isValidPhone("12345"))
	assert.False(t, isValidPhone("7+9123456789"))
	assert.False(t, isValidPhone("+7 912 345 67 89 12 34 56"))
}
