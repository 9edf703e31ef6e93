package confirm_payment

import "errors"

var (
	// ErrFlowNotFound возвращается, когда поток бронирования не найден
	ErrFlowNotFound = errors.New("confirm_payment: booking flow not found")

	// ErrForbidden возвращается, когда поток принадлежит другому пользователю
	ErrForbidden = errors.New("confirm_payment: access denied")

	// ErrInvalidStep возвращается, когда поток не на шаге оплаты
	ErrInvalidStep = errors.New("confirm_payment: flow is not on the payment step")

	// ErrPaymentNotReady возвращается, когда QR для оплаты еще не сгенерирован
	ErrPaymentNotReady = errors.New("confirm_payment: payment QR is not ready yet")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
