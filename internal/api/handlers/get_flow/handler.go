package get_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookingflows"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgFlowNotFound = "бронирование не найдено"
	msgAccessDenied = "доступ запрещен"
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

// Handle GET /api/v1/flows/{flowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	snap, err := h.service.Get(flowID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingflows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, bookingflows.ErrForbidden):
			h.logger.Warn("GET /flows/{flowId} - Access denied: flow_id=%s, user_id=%d", flowID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /flows/{flowId} - Failed to get flow: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
