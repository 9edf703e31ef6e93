package open_flow

import (
	"context"

	openFlow "github.com/m04kA/SMC-FieldBookingService/internal/usecase/open_flow"
)

type OpenFlowUseCase interface {
	Execute(ctx context.Context, req *openFlow.Request) (*openFlow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
