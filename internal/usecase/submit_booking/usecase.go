package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	fieldClient "github.com/m04kA/SMC-FieldBookingService/internal/integrations/fieldservice"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// UseCase use case для отправки бронирования и перехода к оплате
type UseCase struct {
	registry FlowRegistry
	client   FieldServiceClient
	cache    ScheduleCache
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case; cache может быть nil
func NewUseCase(
	registry FlowRegistry,
	client FieldServiceClient,
	cache ScheduleCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		registry: registry,
		client:   client,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute валидирует черновик, повторно проверяет слот, создает бронирование
// на стороне FieldService и переводит поток на шаг оплаты.
// Повторных попыток нет: ошибка возвращается пользователю.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: flow=%s, user=%d, role=%s", req.FlowID, req.UserID, req.Role)

	// 1. Пользователь обязателен
	if req.UserID <= 0 {
		uc.logger.Warn("SubmitBooking: flow=%s, no user identity", req.FlowID)
		uc.metrics.IncSubmission(outcomeDenied)
		return nil, ErrUserRequired
	}

	// 2. Получаем поток и проверяем владельца
	machine, err := uc.registry.Get(req.FlowID)
	if err != nil {
		if errors.Is(err, flow.ErrFlowNotFound) {
			uc.logger.Warn("SubmitBooking: flow %s not found", req.FlowID)
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get flow %s: %v", req.FlowID, err)
		return nil, fmt.Errorf("%w: failed to get flow: %v", ErrSubmissionFailed, err)
	}
	if machine.UserID() != req.UserID {
		uc.logger.Warn("SubmitBooking: user=%d has no access to flow %s", req.UserID, req.FlowID)
		return nil, ErrForbidden
	}

	// 3. Роль должна позволять бронирование
	if !domain.IsBookingEligibleRole(req.Role) {
		uc.logger.Warn("SubmitBooking: role %q is not allowed to book, user=%d", req.Role, req.UserID)
		uc.metrics.IncSubmission(outcomeDenied)
		return nil, ErrRoleDenied
	}

	// 4. Блокируем черновик на время отправки
	snap, release, err := machine.BeginSubmission()
	if err != nil {
		return nil, uc.mapFlowError(req.FlowID, err)
	}
	defer release()

	draft := snap.Draft

	// 5. Валидация контактов и параметров повторения
	if err := validateDraft(draft); err != nil {
		uc.logger.Warn("SubmitBooking: flow=%s validation failed: %v", req.FlowID, err)
		uc.metrics.IncSubmission(outcomeValidation)
		return nil, err
	}

	// 6. Повторная проверка выбранного слота на выбранную дату
	avail, err := uc.client.CheckAvailability(ctx, draft.FieldID, draft.Date, draft.SlotID)
	if err != nil {
		uc.logger.Error("SubmitBooking: availability check failed for field=%s slot=%s: %v",
			draft.FieldID, draft.SlotID, err)
		uc.metrics.IncSubmission(outcomeFailed)
		return nil, fmt.Errorf("%w: availability check: %v", ErrSubmissionFailed, err)
	}
	if avail == nil || !avail.Available {
		msg := ""
		if avail != nil {
			msg = avail.Message
		}
		uc.logger.Warn("SubmitBooking: slot %s on %s is taken: %s",
			draft.SlotID, draft.Date.Format(domain.DateFormat), msg)
		uc.metrics.IncSubmission(outcomeConflict)
		return nil, &ConflictError{Message: msg}
	}

	// 7. Определяем расписание для слота
	scheduleID := uc.resolveScheduleID(ctx, draft)

	// 8. Создаем бронирование
	resp, err := uc.client.CreateBooking(ctx, buildPayload(draft, snap.Sessions, scheduleID))
	if err != nil {
		return nil, uc.mapCreateError(err)
	}

	if resp == nil || resp.BookingID == "" {
		uc.logger.Error("SubmitBooking: flow=%s, server returned no booking id", req.FlowID)
		uc.metrics.IncSubmission(outcomeMissingBookingID)
		return nil, ErrMissingBookingID
	}

	// 9. Нормализуем ответ и переходим к оплате
	record := toRecord(resp, scheduleID, draft.Pricing)
	if resp.QRExpiresAt != nil && record.QRExpiresAt == nil {
		uc.logger.Warn("SubmitBooking: booking=%s has unparsable qrExpiresAt %q", record.BookingID, *resp.QRExpiresAt)
	}

	paymentSnap, err := machine.EnterPayment(&record)
	if err != nil {
		uc.logger.Error("SubmitBooking: booking=%s created but flow %s cannot enter payment: %v",
			record.BookingID, req.FlowID, err)
		uc.metrics.IncSubmission(outcomeFailed)
		return nil, uc.mapFlowError(req.FlowID, err)
	}

	uc.metrics.IncSubmission(outcomeSuccess)
	uc.logger.Info("SubmitBooking: flow=%s, booking=%s created, total=%d, deposit=%d",
		req.FlowID, record.BookingID, record.TotalPrice, record.DepositAmount)

	return &Response{Flow: paymentSnap, Record: record}, nil
}

// resolveScheduleID ищет расписание по слоту и дате.
// Если совпадения нет, расписание назначит сервер.
func (uc *UseCase) resolveScheduleID(ctx context.Context, draft *domain.BookingDraft) string {
	schedules := uc.loadSchedules(ctx, draft.FieldID)
	for i := range schedules {
		if schedules[i].Matches(draft.SlotID, draft.Date) {
			return schedules[i].ID
		}
	}

	uc.logger.Warn("SubmitBooking: no schedule for field=%s slot=%s date=%s, server will assign one",
		draft.FieldID, draft.SlotID, draft.Date.Format(domain.DateFormat))
	uc.metrics.IncScheduleFallback()
	return domain.ScheduleAssignedByServer
}

func (uc *UseCase) loadSchedules(ctx context.Context, fieldID string) []domain.Schedule {
	if uc.cache != nil {
		schedules, ok, err := uc.cache.GetSchedules(ctx, fieldID)
		if err != nil {
			uc.logger.Warn("SubmitBooking: schedule cache read failed for field=%s: %v", fieldID, err)
		} else if ok {
			return schedules
		}
	}

	schedules, err := uc.client.ListSchedules(ctx, fieldID)
	if err != nil {
		uc.logger.Warn("SubmitBooking: failed to list schedules for field=%s: %v", fieldID, err)
		return nil
	}

	if uc.cache != nil {
		if err := uc.cache.SetSchedules(ctx, fieldID, schedules); err != nil {
			uc.logger.Warn("SubmitBooking: schedule cache write failed for field=%s: %v", fieldID, err)
		}
	}
	return schedules
}

func (uc *UseCase) mapCreateError(err error) error {
	switch {
	case errors.Is(err, fieldClient.ErrDurationLimitExceeded):
		uc.logger.Warn("SubmitBooking: duration limit exceeded: %v", err)
		uc.metrics.IncSubmission(outcomeDurationLimit)
		return fmt.Errorf("%w: %v", ErrDurationLimitExceeded, err)
	case errors.Is(err, fieldClient.ErrSlotConflict):
		uc.logger.Warn("SubmitBooking: server reported slot conflict: %v", err)
		uc.metrics.IncSubmission(outcomeConflict)
		return &ConflictError{}
	default:
		uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
		uc.metrics.IncSubmission(outcomeFailed)
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
}

func (uc *UseCase) mapFlowError(flowID string, err error) error {
	switch {
	case errors.Is(err, flow.ErrFlowClosed):
		return ErrFlowNotFound
	case errors.Is(err, flow.ErrInvalidTransition):
		uc.logger.Warn("SubmitBooking: flow %s is not on the details step", flowID)
		return ErrInvalidStep
	case errors.Is(err, flow.ErrSubmissionInProgress):
		uc.logger.Warn("SubmitBooking: flow %s is already being submitted", flowID)
		return ErrSubmissionInProgress
	default:
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
}

func buildPayload(draft *domain.BookingDraft, sessions []domain.Session, scheduleID string) *fieldClient.CreateBookingRequest {
	payload := &fieldClient.CreateBookingRequest{
		UserID:        draft.UserID,
		FieldID:       draft.FieldID,
		SlotID:        draft.SlotID,
		ScheduleID:    scheduleID,
		Date:          draft.Date.Format(domain.DateFormat),
		ContactName:   draft.Contact.Name,
		Phone:         draft.Contact.Phone,
		Email:         draft.Contact.Email,
		Notes:         draft.Contact.Notes,
		HasOpponent:   draft.HasOpponent,
		IsRecurring:   draft.IsRecurring,
		Sessions:      make([]fieldClient.SessionPayload, 0, len(sessions)),
		TotalPrice:    draft.Pricing.Total,
		DepositAmount: draft.Pricing.DepositAmount,
	}

	if rec := draft.ActiveRecurrence(); rec != nil {
		weekdays := make([]int, 0, len(rec.WeekdaySet))
		for _, wd := range rec.WeekdaySet {
			weekdays = append(weekdays, int(wd))
		}
		payload.Recurrence = &fieldClient.RecurrencePayload{
			StartDate: rec.StartDate.Format(domain.DateFormat),
			Weekdays:  weekdays,
			WeekCount: rec.WeekCount,
		}
	}

	for _, s := range sessions {
		payload.Sessions = append(payload.Sessions, fieldClient.SessionPayload{
			Date:      s.Date.Format(domain.DateFormat),
			SlotLabel: s.SlotLabel,
		})
	}
	return payload
}
