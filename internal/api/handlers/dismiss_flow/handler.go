package dismiss_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookingflows"
)

const (
	msgUnauthorized         = "требуется авторизация"
	msgFlowNotFound         = "бронирование не найдено"
	msgAccessDenied         = "доступ запрещен"
	msgPaymentLocked        = "окно оплаты нельзя закрыть, пока идет оплата"
	msgSubmissionInProgress = "окно нельзя закрыть, пока бронирование отправляется"
)

// DismissResponse ответ: окно можно свернуть
type DismissResponse struct {
	Dismissed bool `json:"dismissed"`
}

type Handler struct {
	service FlowService
	logger  Logger
}

func NewHandler(service FlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows/{flowId}/dismiss
// Клик по подложке или Esc; поток при этом остается открытым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	if err := h.service.Dismiss(flowID, userID); err != nil {
		switch {
		case errors.Is(err, bookingflows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, bookingflows.ErrForbidden):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookingflows.ErrPaymentLocked):
			h.logger.Warn("POST /flows/{flowId}/dismiss - Refused, payment locked: flow_id=%s", flowID)
			handlers.RespondLocked(w, msgPaymentLocked)
		case errors.Is(err, bookingflows.ErrSubmissionInProgress):
			h.logger.Warn("POST /flows/{flowId}/dismiss - Refused, submission in progress: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("POST /flows/{flowId}/dismiss - Failed: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DismissResponse{Dismissed: true})
}
