package paymentlock

import "errors"

var (
	// ErrAlreadyLocked возвращается при попытке запустить вторую блокировку для одного черновика
	ErrAlreadyLocked = errors.New("paymentlock: lock is already active")
)
