package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	confirmPayment "github.com/m04kA/SMC-FieldBookingService/internal/usecase/confirm_payment"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgFlowNotFound    = "бронирование не найдено"
	msgAccessDenied    = "доступ запрещен"
	msgInvalidStep     = "подтвердить оплату можно только на шаге оплаты"
	msgPaymentNotReady = "QR-код для оплаты еще не готов"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows/{flowId}/confirm-payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		FlowID: flowID,
		UserID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, confirmPayment.ErrForbidden):
			h.logger.Warn("POST /flows/{flowId}/confirm-payment - Access denied: flow_id=%s, user_id=%d", flowID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, confirmPayment.ErrInvalidStep):
			handlers.RespondConflict(w, msgInvalidStep)
		case errors.Is(err, confirmPayment.ErrPaymentNotReady):
			handlers.RespondConflict(w, msgPaymentNotReady)
		default:
			h.logger.Error("POST /flows/{flowId}/confirm-payment - Failed: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/confirm-payment - Payment confirmed: flow_id=%s, booking_id=%s",
		flowID, result.Record.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
