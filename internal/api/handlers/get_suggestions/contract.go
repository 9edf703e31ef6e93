package get_suggestions

import (
	"context"

	suggestWeekdays "github.com/m04kA/SMC-FieldBookingService/internal/usecase/suggest_weekdays"
)

type SuggestWeekdaysUseCase interface {
	Execute(ctx context.Context, req *suggestWeekdays.Request) (*suggestWeekdays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
