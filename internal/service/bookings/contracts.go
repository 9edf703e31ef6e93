package bookings

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// HistoryRepository интерфейс репозитория истории бронирований
type HistoryRepository interface {
	ListByUser(ctx context.Context, filter domain.HistoryFilter) ([]*domain.HistoryEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
