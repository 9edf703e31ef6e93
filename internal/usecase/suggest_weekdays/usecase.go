package suggest_weekdays

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// UseCase use case для подсказок дней недели в повторяющемся бронировании
type UseCase struct {
	registry  FlowRegistry
	suggester *Suggester
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registry FlowRegistry, prober AvailabilityProber, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		registry:  registry,
		suggester: NewSuggester(prober, metrics, logger),
		logger:    logger,
	}
}

// Execute считает подсказки по текущему черновику потока.
// Для неповторяющегося бронирования возвращается пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestWeekdays: flow=%s, user=%d", req.FlowID, req.UserID)

	// 1. Получаем поток
	machine, err := uc.registry.Get(req.FlowID)
	if err != nil {
		if errors.Is(err, flow.ErrFlowNotFound) {
			uc.logger.Warn("SuggestWeekdays: flow %s not found", req.FlowID)
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("SuggestWeekdays: failed to get flow %s: %v", req.FlowID, err)
		return nil, fmt.Errorf("%w: failed to get flow: %v", ErrInternal, err)
	}

	// 2. Проверяем владельца
	if machine.UserID() != req.UserID {
		uc.logger.Warn("SuggestWeekdays: user=%d has no access to flow %s", req.UserID, req.FlowID)
		return nil, ErrForbidden
	}

	// 3. Считаем подсказки по снимку черновика
	draft := machine.Snapshot().Draft
	rec := draft.ActiveRecurrence()
	if rec == nil {
		return &Response{Suggestions: []Suggestion{}}, nil
	}

	suggestions := uc.suggester.Suggest(ctx, Input{
		FieldID:    draft.FieldID,
		SlotID:     draft.SlotID,
		StartDate:  rec.StartDate,
		WeekdaySet: rec.WeekdaySet,
		WeekCount:  rec.WeekCount,
	})

	uc.logger.Info("SuggestWeekdays: flow=%s, %d suggestions", req.FlowID, len(suggestions))
	return &Response{Suggestions: suggestions}, nil
}
