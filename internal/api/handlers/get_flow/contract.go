package get_flow

import "github.com/m04kA/SMC-FieldBookingService/internal/service/flow"

type FlowService interface {
	Get(flowID string, userID int64) (*flow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
