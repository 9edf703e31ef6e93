package submit_booking

import (
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// Request модель запроса на отправку бронирования
type Request struct {
	FlowID string
	UserID int64
	Role   string
}

// Response модель ответа: поток на шаге оплаты и созданное бронирование
type Response struct {
	Flow   flow.Snapshot
	Record domain.BookingRecord
}

// Исходы отправки для метрик
const (
	outcomeSuccess          = "success"
	outcomeValidation       = "validation"
	outcomeDenied           = "denied"
	outcomeConflict         = "conflict"
	outcomeDurationLimit    = "duration_limit"
	outcomeMissingBookingID = "missing_booking_id"
	outcomeFailed           = "failed"
)

// qrDataURIPrefix префикс для QR, пришедшего как base64 PNG без схемы
const qrDataURIPrefix = "data:image/png;base64,"

// qrKnownSchemes схемы, которые уже можно показывать как есть
var qrKnownSchemes = []string{"http:", "https:", "data:"}
