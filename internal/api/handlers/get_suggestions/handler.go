package get_suggestions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	suggestWeekdays "github.com/m04kA/SMC-FieldBookingService/internal/usecase/suggest_weekdays"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgFlowNotFound = "бронирование не найдено"
	msgAccessDenied = "доступ запрещен"
)

type Handler struct {
	useCase SuggestWeekdaysUseCase
	logger  Logger
}

func NewHandler(useCase SuggestWeekdaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/flows/{flowId}/suggestions
// Ошибки проверок доступности не возвращаются клиенту: в этом случае список пустой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]

	result, err := h.useCase.Execute(r.Context(), &suggestWeekdays.Request{
		FlowID: flowID,
		UserID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, suggestWeekdays.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, suggestWeekdays.ErrForbidden):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /flows/{flowId}/suggestions - Failed: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
