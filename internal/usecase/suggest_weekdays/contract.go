package suggest_weekdays

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// AvailabilityProber проверка доступности слота на дату
type AvailabilityProber interface {
	CheckAvailability(ctx context.Context, fieldID string, date time.Time, slotID string) (*domain.Availability, error)
}

// FlowRegistry реестр открытых потоков бронирования
type FlowRegistry interface {
	Get(id string) (*flow.Machine, error)
}

// Metrics счетчики подсказок
type Metrics interface {
	IncProbe(result string)
	IncSuggestionReset()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
