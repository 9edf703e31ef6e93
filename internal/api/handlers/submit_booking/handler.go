package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-FieldBookingService/internal/usecase/submit_booking"
)

const (
	msgUnauthorized         = "требуется авторизация"
	msgValidationFailed     = "проверьте заполнение полей"
	msgRoleDenied           = "бронирование доступно только игрокам"
	msgFlowNotFound         = "бронирование не найдено"
	msgAccessDenied         = "доступ запрещен"
	msgInvalidStep          = "бронирование уже отправлено"
	msgSubmissionInProgress = "бронирование уже отправляется"
	msgSlotConflict         = "выбранный слот уже занят"
	msgDurationLimit        = "превышен лимит длительности бронирования"
	msgSubmissionFailed     = "не удалось создать бронирование, попробуйте позже"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows/{flowId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{
		FlowID: flowID,
		UserID: userID,
		Role:   middleware.GetUserRole(r.Context()),
	})
	if err != nil {
		h.respondError(w, flowID, userID, err)
		return
	}

	h.logger.Info("POST /flows/{flowId}/submit - Booking created: flow_id=%s, booking_id=%s, user_id=%d",
		flowID, result.Record.BookingID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, flowID string, userID int64, err error) {
	var validationErr *submitBooking.ValidationError
	var conflictErr *submitBooking.ConflictError

	switch {
	case errors.As(err, &validationErr):
		handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

	case errors.Is(err, submitBooking.ErrUserRequired):
		handlers.RespondUnauthorized(w, msgUnauthorized)

	case errors.Is(err, submitBooking.ErrRoleDenied):
		handlers.RespondForbidden(w, msgRoleDenied)

	case errors.Is(err, submitBooking.ErrFlowNotFound):
		handlers.RespondNotFound(w, msgFlowNotFound)

	case errors.Is(err, submitBooking.ErrForbidden):
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, submitBooking.ErrInvalidStep):
		handlers.RespondConflict(w, msgInvalidStep)

	case errors.Is(err, submitBooking.ErrSubmissionInProgress):
		handlers.RespondConflict(w, msgSubmissionInProgress)

	case errors.As(err, &conflictErr):
		// Сообщение сервиса доступности показываем как есть
		msg := conflictErr.Message
		if msg == "" {
			msg = msgSlotConflict
		}
		h.logger.Warn("POST /flows/{flowId}/submit - Slot conflict: flow_id=%s, user_id=%d", flowID, userID)
		handlers.RespondConflict(w, msg)

	case errors.Is(err, submitBooking.ErrSlotConflict):
		h.logger.Warn("POST /flows/{flowId}/submit - Slot conflict: flow_id=%s, user_id=%d", flowID, userID)
		handlers.RespondConflict(w, msgSlotConflict)

	case errors.Is(err, submitBooking.ErrDurationLimitExceeded):
		h.logger.Warn("POST /flows/{flowId}/submit - Duration limit exceeded: flow_id=%s", flowID)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgDurationLimit)

	case errors.Is(err, submitBooking.ErrMissingBookingID), errors.Is(err, submitBooking.ErrSubmissionFailed):
		h.logger.Error("POST /flows/{flowId}/submit - Submission failed: flow_id=%s, error=%v", flowID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

	default:
		h.logger.Error("POST /flows/{flowId}/submit - Unexpected error: flow_id=%s, error=%v", flowID, err)
		handlers.RespondInternalError(w)
	}
}
