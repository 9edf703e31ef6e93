package bankaccounts

import "errors"

var (
	// ErrBankAccountNotFound возвращается, когда банковский счет не найден
	ErrBankAccountNotFound = errors.New("bankaccounts: bank account not found")

	// ErrNoAccountReference возвращается, когда не указан ни счет, ни владелец поля
	ErrNoAccountReference = errors.New("bankaccounts: neither account id nor owner id is set")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bankaccounts: internal error")
)
