package open_flow

import "github.com/m04kA/SMC-FieldBookingService/internal/service/flow"

// FlowRegistry реестр открытых потоков бронирования
type FlowRegistry interface {
	Add(m *flow.Machine) error
}

// IDGenerator генератор идентификаторов потоков
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
