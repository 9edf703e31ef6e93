package submit_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/integrations/fieldservice"
)

// toRecord приводит ответ сервиса к BookingRecord.
// Суммы сервера имеют приоритет, при их отсутствии используется локальный расчет.
func toRecord(resp *fieldservice.BookingResponse, scheduleID string, local domain.PricingBreakdown) domain.BookingRecord {
	rec := domain.BookingRecord{
		BookingID:     resp.BookingID,
		ScheduleID:    resp.ScheduleID,
		BookingStatus: parseBookingStatus(resp.BookingStatus),
		PaymentStatus: parsePaymentStatus(resp.PaymentStatus),
		QRArtifact:    normalizeQR(resp.QRCode),
		QRExpiresAt:   parseExpiry(resp.QRExpiresAt),
		TotalPrice:    local.Total,
		DepositAmount: local.DepositAmount,
	}
	if rec.ScheduleID == "" {
		rec.ScheduleID = scheduleID
	}

	if resp.TotalPrice != nil {
		rec.TotalPrice = *resp.TotalPrice
	}
	if resp.DepositAmount != nil {
		rec.DepositAmount = *resp.DepositAmount
	}

	switch {
	case resp.RemainingAmount != nil:
		rec.RemainingAmount = *resp.RemainingAmount
	case resp.TotalPrice == nil && resp.DepositAmount == nil:
		rec.RemainingAmount = local.RemainingAmount
	default:
		rec.RemainingAmount = rec.TotalPrice - rec.DepositAmount
		if rec.RemainingAmount < 0 {
			rec.RemainingAmount = 0
		}
	}

	return rec
}

// normalizeQR превращает сырой base64 в data URI; URI с известной схемой не меняются
func normalizeQR(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(raw)
	for _, scheme := range qrKnownSchemes {
		if strings.HasPrefix(lower, scheme) {
			return raw
		}
	}
	return qrDataURIPrefix + raw
}

func parseExpiry(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil
	}
	return &t
}

func parseBookingStatus(s string) domain.BookingStatus {
	switch domain.BookingStatus(strings.ToLower(s)) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed
	case domain.StatusCancelled:
		return domain.StatusCancelled
	default:
		return domain.StatusPending
	}
}

func parsePaymentStatus(s string) domain.PaymentStatus {
	switch domain.PaymentStatus(strings.ToLower(s)) {
	case domain.PaymentPending:
		return domain.PaymentPending
	case domain.PaymentPaid:
		return domain.PaymentPaid
	default:
		return domain.PaymentUnpaid
	}
}
