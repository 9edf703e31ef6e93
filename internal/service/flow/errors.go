package flow

import "errors"

var (
	// ErrFlowNotFound возвращается, когда поток бронирования не найден
	ErrFlowNotFound = errors.New("flow: booking flow not found")

	// ErrTooManyFlows возвращается, когда превышен лимит открытых потоков
	ErrTooManyFlows = errors.New("flow: too many open booking flows")

	// ErrFlowClosed возвращается при обращении к закрытому потоку
	ErrFlowClosed = errors.New("flow: booking flow is closed")

	// ErrInvalidTransition возвращается при недопустимом переходе между шагами
	ErrInvalidTransition = errors.New("flow: invalid step transition")

	// ErrDraftNotEditable возвращается при изменении черновика вне шага details
	ErrDraftNotEditable = errors.New("flow: draft can only be edited on the details step")

	// ErrInvalidPatch возвращается при некорректных изменениях черновика
	ErrInvalidPatch = errors.New("flow: invalid draft changes")

	// ErrPaymentLocked возвращается при попытке закрыть или свернуть поток во время блокировки оплаты
	ErrPaymentLocked = errors.New("flow: payment step is locked")

	// ErrCancelNotConfirmed возвращается, когда отмена бронирования не подтверждена пользователем
	ErrCancelNotConfirmed = errors.New("flow: booking cancellation must be confirmed")

	// ErrSubmissionInProgress возвращается, пока предыдущая отправка бронирования не завершена
	ErrSubmissionInProgress = errors.New("flow: booking submission is already in progress")

	// ErrMissingBookingID возвращается, когда сервер не вернул ID бронирования
	ErrMissingBookingID = errors.New("flow: booking id is missing")

	// ErrMissingPaymentArtifact возвращается, когда QR для оплаты еще не сгенерирован
	ErrMissingPaymentArtifact = errors.New("flow: payment QR is not generated yet")
)
