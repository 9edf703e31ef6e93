package update_draft

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput         = "некорректные значения черновика"
	msgFlowNotFound         = "бронирование не найдено"
	msgAccessDenied         = "доступ запрещен"
	msgDraftNotEditable     = "черновик можно менять только до перехода к оплате"
	msgSubmissionInProgress = "бронирование уже отправляется"
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

// Handle PATCH /api/v1/flows/{flowId}/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /flows/{flowId}/draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.ToDraftPatch()
	if err != nil {
		h.logger.Warn("PATCH /flows/{flowId}/draft - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	snap, err := h.service.UpdateDraft(flowID, userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, bookingflows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, bookingflows.ErrForbidden):
			h.logger.Warn("PATCH /flows/{flowId}/draft - Access denied: flow_id=%s, user_id=%d", flowID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookingflows.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, bookingflows.ErrInvalidStep):
			handlers.RespondConflict(w, msgDraftNotEditable)
		case errors.Is(err, bookingflows.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("PATCH /flows/{flowId}/draft - Failed to update draft: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
