package cache

import "errors"

var (
	// ErrCache возвращается при ошибках обращения к redis
	ErrCache = errors.New("cache: redis error")
)
