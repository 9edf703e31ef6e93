package fieldservice

import "errors"

var (
	// ErrSlotConflict возвращается, когда слот уже занят (409)
	ErrSlotConflict = errors.New("fieldservice client: slot already booked")

	// ErrDurationLimitExceeded возвращается, когда превышен лимит длительности бронирования
	ErrDurationLimitExceeded = errors.New("fieldservice client: booking duration limit exceeded")

	// ErrBankAccountNotFound возвращается, когда банковский счет не найден
	ErrBankAccountNotFound = errors.New("fieldservice client: bank account not found")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("fieldservice client: field not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fieldservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("fieldservice client: invalid response")
)
