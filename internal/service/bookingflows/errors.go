package bookingflows

import "errors"

var (
	// ErrFlowNotFound возвращается, когда поток бронирования не найден
	ErrFlowNotFound = errors.New("bookingflows: booking flow not found")

	// ErrForbidden возвращается, когда поток принадлежит другому пользователю
	ErrForbidden = errors.New("bookingflows: access denied")

	// ErrPaymentLocked возвращается при попытке закрыть поток во время блокировки оплаты
	ErrPaymentLocked = errors.New("bookingflows: payment step is locked")

	// ErrInvalidStep возвращается, когда операция недоступна на текущем шаге
	ErrInvalidStep = errors.New("bookingflows: operation is not allowed on the current step")

	// ErrInvalidInput возвращается при некорректных изменениях черновика
	ErrInvalidInput = errors.New("bookingflows: invalid input data")

	// ErrCancelNotConfirmed возвращается, когда отмена не подтверждена пользователем
	ErrCancelNotConfirmed = errors.New("bookingflows: cancellation must be confirmed")

	// ErrSubmissionInProgress возвращается, пока идет отправка бронирования
	ErrSubmissionInProgress = errors.New("bookingflows: submission is in progress")

	// ErrBankAccountNotFound возвращается, когда банковский счет не найден
	ErrBankAccountNotFound = errors.New("bookingflows: bank account not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookingflows: internal error")
)
