package bankaccounts

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// AccountCache кэш банковских счетов
type AccountCache interface {
	GetBankAccount(ctx context.Context, key string) (*domain.BankAccount, bool, error)
	SetBankAccount(ctx context.Context, key string, account *domain.BankAccount) error
}

// FieldServiceClient интерфейс клиента для FieldService
type FieldServiceClient interface {
	GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error)
	GetBankAccountByOwner(ctx context.Context, ownerID string) (*domain.BankAccount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
