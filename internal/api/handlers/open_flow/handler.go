package open_flow

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	openFlow "github.com/m04kA/SMC-FieldBookingService/internal/usecase/open_flow"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgUnauthorized       = "требуется авторизация"
	msgTooManyFlows       = "слишком много открытых бронирований, попробуйте позже"
)

type Handler struct {
	useCase OpenFlowUseCase
	logger  Logger
}

func NewHandler(useCase OpenFlowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req OpenFlowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /flows - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, openFlow.ErrUserRequired):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, openFlow.ErrInvalidInput):
			h.logger.Warn("POST /flows - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, openFlow.ErrTooManyFlows):
			h.logger.Warn("POST /flows - Too many open flows: user_id=%d", userID)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyFlows)

		default:
			h.logger.Error("POST /flows - Failed to open flow: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows - Flow opened: flow_id=%s, user_id=%d", result.Flow.FlowID, userID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSnapshot(&result.Flow))
}
