package get_payment_account

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

type FlowService interface {
	PaymentAccount(ctx context.Context, flowID string, userID int64) (*domain.BankAccount, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
