package cancel_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookingflows"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFlowNotFound       = "бронирование не найдено"
	msgAccessDenied       = "доступ запрещен"
	msgNotConfirmed       = "отмену бронирования нужно подтвердить"
	msgInvalidStep        = "отменить можно только бронирование, ожидающее оплаты"
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

// Handle POST /api/v1/flows/{flowId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	var req CancelPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flows/{flowId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, cancelled, err := h.service.CancelPayment(flowID, userID, req.Confirmed)
	if err != nil {
		switch {
		case errors.Is(err, bookingflows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, bookingflows.ErrForbidden):
			h.logger.Warn("POST /flows/{flowId}/cancel - Access denied: flow_id=%s, user_id=%d", flowID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookingflows.ErrCancelNotConfirmed):
			handlers.RespondBadRequest(w, msgNotConfirmed)
		case errors.Is(err, bookingflows.ErrInvalidStep):
			handlers.RespondConflict(w, msgInvalidStep)
		default:
			h.logger.Error("POST /flows/{flowId}/cancel - Failed to cancel: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/cancel - Payment cancelled: flow_id=%s, user_id=%d", flowID, userID)
	handlers.RespondJSON(w, http.StatusOK, CancelPaymentResponse{
		Flow:      handlers.FromSnapshot(snap),
		Cancelled: handlers.FromBookingRecord(cancelled),
	})
}
