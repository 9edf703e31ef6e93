package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/integrations/fieldservice"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// FlowRegistry реестр открытых потоков бронирования
type FlowRegistry interface {
	Get(id string) (*flow.Machine, error)
}

// FieldServiceClient интерфейс клиента для FieldService
type FieldServiceClient interface {
	CheckAvailability(ctx context.Context, fieldID string, date time.Time, slotID string) (*domain.Availability, error)
	ListSchedules(ctx context.Context, fieldID string) ([]domain.Schedule, error)
	CreateBooking(ctx context.Context, payload *fieldservice.CreateBookingRequest) (*fieldservice.BookingResponse, error)
}

// ScheduleCache кэш расписаний полей
type ScheduleCache interface {
	GetSchedules(ctx context.Context, fieldID string) ([]domain.Schedule, bool, error)
	SetSchedules(ctx context.Context, fieldID string, schedules []domain.Schedule) error
}

// Metrics счетчики отправки бронирований
type Metrics interface {
	IncSubmission(outcome string)
	IncScheduleFallback()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
