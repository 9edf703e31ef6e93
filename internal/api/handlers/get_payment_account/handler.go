package get_payment_account

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookingflows"
)

const (
	msgUnauthorized   = "требуется авторизация"
	msgFlowNotFound   = "бронирование не найдено"
	msgAccessDenied   = "доступ запрещен"
	msgNotPaymentStep = "реквизиты доступны только на шаге оплаты"
	msgNoBankAccount  = "реквизиты для оплаты не найдены"
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

// Handle GET /api/v1/flows/{flowId}/payment-account
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	account, err := h.service.PaymentAccount(r.Context(), flowID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingflows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, bookingflows.ErrForbidden):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookingflows.ErrInvalidStep):
			handlers.RespondConflict(w, msgNotPaymentStep)
		case errors.Is(err, bookingflows.ErrBankAccountNotFound):
			h.logger.Warn("GET /flows/{flowId}/payment-account - No bank account: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgNoBankAccount)
		default:
			h.logger.Error("GET /flows/{flowId}/payment-account - Failed: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(account))
}
