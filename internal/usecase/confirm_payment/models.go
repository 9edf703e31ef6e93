package confirm_payment

import (
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// Request модель запроса на подтверждение оплаты
type Request struct {
	FlowID string
	UserID int64
}

// Response модель ответа: поток на шаге подтверждения
type Response struct {
	Flow   flow.Snapshot
	Record domain.BookingRecord
}

// Виды побочных эффектов для метрик
const (
	sideEffectHistory   = "history"
	sideEffectCommunity = "community"
)
