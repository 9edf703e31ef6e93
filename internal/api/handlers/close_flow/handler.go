package close_flow

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
	msgPaymentLocked        = "нельзя закрыть бронирование до завершения оплаты"
	msgSubmissionInProgress = "нельзя закрыть бронирование, пока оно отправляется"
)

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

// Handle DELETE /api/v1/flows/{flowId}
// Пока активна блокировка оплаты, поток закрыть нельзя (423);
// пока идет отправка бронирования тоже (409)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	if err := h.service.Close(flowID, userID); err != nil {
		switch {
		case errors.Is(err, bookingflows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, bookingflows.ErrForbidden):
			h.logger.Warn("DELETE /flows/{flowId} - Access denied: flow_id=%s, user_id=%d", flowID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookingflows.ErrPaymentLocked):
			h.logger.Warn("DELETE /flows/{flowId} - Refused, payment locked: flow_id=%s", flowID)
			handlers.RespondLocked(w, msgPaymentLocked)
		case errors.Is(err, bookingflows.ErrSubmissionInProgress):
			h.logger.Warn("DELETE /flows/{flowId} - Refused, submission in progress: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("DELETE /flows/{flowId} - Failed to close flow: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /flows/{flowId} - Flow closed: flow_id=%s, user_id=%d", flowID, userID)
	w.WriteHeader(http.StatusNoContent)
}
