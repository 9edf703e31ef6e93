package open_flow

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("open_flow: invalid input data")

	// ErrUserRequired возвращается, когда пользователь не авторизован
	ErrUserRequired = errors.New("open_flow: user is required")

	// ErrTooManyFlows возвращается, когда превышен лимит открытых потоков
	ErrTooManyFlows = errors.New("open_flow: too many open booking flows")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("open_flow: internal error")
)
