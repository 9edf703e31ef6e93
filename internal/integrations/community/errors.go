package community

import "errors"

var (
	// ErrPublishFailed возвращается, когда событие не удалось записать в kafka
	ErrPublishFailed = errors.New("community: failed to publish event")

	// ErrInvalidEvent возвращается при некорректном событии
	ErrInvalidEvent = errors.New("community: invalid event")
)
