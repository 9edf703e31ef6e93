package suggest_weekdays

import "errors"

var (
	// ErrFlowNotFound возвращается, когда поток бронирования не найден
	ErrFlowNotFound = errors.New("suggest_weekdays: booking flow not found")

	// ErrForbidden возвращается, когда поток принадлежит другому пользователю
	ErrForbidden = errors.New("suggest_weekdays: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("suggest_weekdays: internal error")
)
