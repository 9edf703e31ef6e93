package update_draft

import "github.com/m04kA/SMC-FieldBookingService/internal/service/flow"

type FlowService interface {
	UpdateDraft(flowID string, userID int64, patch flow.DraftPatch) (*flow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
