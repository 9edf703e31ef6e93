package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/integrations/community"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// FlowRegistry реестр открытых потоков бронирования
type FlowRegistry interface {
	Get(id string) (*flow.Machine, error)
	Close(id string) error
}

// HistoryRepository локальная история бронирований
type HistoryRepository interface {
	Append(ctx context.Context, entry *domain.HistoryEntry) (bool, error)
}

// CommunityPublisher публикация постов в сообщество
type CommunityPublisher interface {
	PublishMatchRequest(ctx context.Context, event *community.MatchRequestEvent) error
}

// Metrics счетчики побочных эффектов подтверждения
type Metrics interface {
	IncSideEffectFailure(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
