package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/integrations/community"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// UseCase use case для подтверждения оплаты депозита
type UseCase struct {
	registry     FlowRegistry
	history      HistoryRepository
	publisher    CommunityPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; publisher может быть nil (kafka выключена)
func NewUseCase(
	registry FlowRegistry,
	history HistoryRepository,
	publisher CommunityPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		registry:     registry,
		history:      history,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит поток на шаг подтверждения.
// Запись в историю и пост в сообщество выполняются после перехода;
// их ошибки логируются и не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: flow=%s, user=%d", req.FlowID, req.UserID)

	// 1. Получаем поток и проверяем владельца
	machine, err := uc.registry.Get(req.FlowID)
	if err != nil {
		if errors.Is(err, flow.ErrFlowNotFound) {
			uc.logger.Warn("ConfirmPayment: flow %s not found", req.FlowID)
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get flow %s: %v", req.FlowID, err)
		return nil, fmt.Errorf("%w: failed to get flow: %v", ErrInternal, err)
	}
	if machine.UserID() != req.UserID {
		uc.logger.Warn("ConfirmPayment: user=%d has no access to flow %s", req.UserID, req.FlowID)
		return nil, ErrForbidden
	}

	// 2. Переход payment -> confirmation
	record, err := machine.ConfirmPayment()
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrMissingPaymentArtifact):
			uc.logger.Warn("ConfirmPayment: flow %s, QR is not generated yet", req.FlowID)
			return nil, ErrPaymentNotReady
		case errors.Is(err, flow.ErrInvalidTransition):
			uc.logger.Warn("ConfirmPayment: flow %s is not on the payment step", req.FlowID)
			return nil, ErrInvalidStep
		case errors.Is(err, flow.ErrFlowClosed):
			return nil, ErrFlowNotFound
		default:
			uc.logger.Error("ConfirmPayment: flow %s: %v", req.FlowID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	snap := machine.Snapshot()
	now := uc.timeProvider.Now()

	// 3. Запись в локальную историю
	uc.appendHistory(ctx, snap, record, now)

	// 4. Пост в сообщество для регулярных игр
	if snap.Draft.IsRecurring {
		uc.publishMatchRequest(ctx, snap, record, now)
	}

	// 5. Поток завершен, освобождаем место в реестре
	if err := uc.registry.Close(req.FlowID); err != nil {
		uc.logger.Warn("ConfirmPayment: failed to release flow %s: %v", req.FlowID, err)
	}

	uc.logger.Info("ConfirmPayment: flow=%s, booking=%s confirmed", req.FlowID, record.BookingID)
	return &Response{Flow: snap, Record: *record}, nil
}

func (uc *UseCase) appendHistory(ctx context.Context, snap flow.Snapshot, record *domain.BookingRecord, now time.Time) {
	draft := snap.Draft
	entry := &domain.HistoryEntry{
		BookingID:       record.BookingID,
		UserID:          draft.UserID,
		FieldID:         draft.FieldID,
		SlotID:          draft.SlotID,
		SlotLabel:       draft.SlotLabel,
		BookingDate:     draft.Date,
		IsRecurring:     draft.IsRecurring,
		SessionCount:    len(snap.Sessions),
		TotalPrice:      record.TotalPrice,
		DepositAmount:   record.DepositAmount,
		RemainingAmount: record.RemainingAmount,
		CreatedAt:       now,
	}
	entry.BookingStatus, entry.PaymentStatus = confirmedStatuses(record)

	inserted, err := uc.history.Append(ctx, entry)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to append history for booking=%s: %v", record.BookingID, err)
		uc.metrics.IncSideEffectFailure(sideEffectHistory)
		return
	}
	if !inserted {
		uc.logger.Info("ConfirmPayment: booking=%s is already in history", record.BookingID)
	}
}

func (uc *UseCase) publishMatchRequest(ctx context.Context, snap flow.Snapshot, record *domain.BookingRecord, now time.Time) {
	if uc.publisher == nil {
		return
	}

	draft := snap.Draft
	dates := make([]string, 0, len(snap.Sessions))
	for _, s := range snap.Sessions {
		dates = append(dates, s.Date.Format(domain.DateFormat))
	}

	event := &community.MatchRequestEvent{
		Type:            community.EventTypeMatchRequest,
		BookingID:       record.BookingID,
		UserID:          draft.UserID,
		FieldID:         draft.FieldID,
		SlotLabel:       draft.SlotLabel,
		SessionDates:    dates,
		LookingOpponent: !draft.HasOpponent,
		ContactName:     draft.Contact.Name,
		Notes:           draft.Contact.Notes,
		CreatedAt:       now,
	}

	if err := uc.publisher.PublishMatchRequest(ctx, event); err != nil {
		uc.logger.Warn("ConfirmPayment: community post for booking=%s failed: %v", record.BookingID, err)
		uc.metrics.IncSideEffectFailure(sideEffectCommunity)
	}
}

// confirmedStatuses статусы, с которыми бронирование попадает в историю после подтверждения оплаты.
// Депозит заявлен пользователем как оплаченный, но еще не проверен сервисом бронирования.
func confirmedStatuses(record *domain.BookingRecord) (domain.BookingStatus, domain.PaymentStatus) {
	bookingStatus := domain.StatusConfirmed
	if record.BookingStatus == domain.StatusCancelled {
		bookingStatus = domain.StatusCancelled
	}

	paymentStatus := domain.PaymentPending
	if record.PaymentStatus == domain.PaymentPaid {
		paymentStatus = domain.PaymentPaid
	}
	return bookingStatus, paymentStatus
}
