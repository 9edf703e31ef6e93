package bookingflows

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// FlowRegistry реестр открытых потоков бронирования
type FlowRegistry interface {
	Get(id string) (*flow.Machine, error)
	Close(id string) error
}

// AccountLookup поиск банковского счета для шага оплаты
type AccountLookup interface {
	Lookup(ctx context.Context, accountID, ownerID string) (*domain.BankAccount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
