package submit_booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput возвращается при ошибках валидации черновика
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrUserRequired возвращается, когда пользователь не авторизован
	ErrUserRequired = errors.New("submit_booking: user is required")

	// ErrRoleDenied возвращается, когда роль пользователя не позволяет бронировать
	ErrRoleDenied = errors.New("submit_booking: role is not allowed to book")

	// ErrFlowNotFound возвращается, когда поток бронирования не найден
	ErrFlowNotFound = errors.New("submit_booking: booking flow not found")

	// ErrForbidden возвращается, когда поток принадлежит другому пользователю
	ErrForbidden = errors.New("submit_booking: access denied")

	// ErrInvalidStep возвращается, когда поток не на шаге details
	ErrInvalidStep = errors.New("submit_booking: booking can only be submitted from the details step")

	// ErrSubmissionInProgress возвращается при повторной отправке до завершения первой
	ErrSubmissionInProgress = errors.New("submit_booking: submission is already in progress")

	// ErrSlotConflict возвращается, когда слот уже занят
	ErrSlotConflict = errors.New("submit_booking: slot is not available")

	// ErrDurationLimitExceeded возвращается, когда сервер отклонил бронирование по лимиту длительности
	ErrDurationLimitExceeded = errors.New("submit_booking: booking duration limit exceeded")

	// ErrMissingBookingID возвращается, когда сервер не вернул ID бронирования
	ErrMissingBookingID = errors.New("submit_booking: server returned no booking id")

	// ErrSubmissionFailed возвращается при прочих ошибках создания бронирования
	ErrSubmissionFailed = errors.New("submit_booking: booking submission failed")
)

// ValidationError ошибки валидации по полям черновика
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%v: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ConflictError слот занят; Message - текст от сервиса доступности
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return ErrSlotConflict.Error()
	}
	return fmt.Sprintf("%v: %s", ErrSlotConflict, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
