package cancel_payment

import (
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

type FlowService interface {
	CancelPayment(flowID string, userID int64, confirmed bool) (*flow.Snapshot, *domain.BookingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
