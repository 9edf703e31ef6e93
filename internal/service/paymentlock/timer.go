package paymentlock

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// Timer блокировка шага оплаты на фиксированное время.
//
// Пока блокировка активна, поток бронирования нельзя закрыть или свернуть.
// По истечении времени блокировка снимается сама, но шаг не меняется
// и созданное на сервере бронирование не откатывается.
type Timer struct {
	mu sync.Mutex

	duration time.Duration
	interval time.Duration
	clock    TimeProvider

	lock    *domain.PaymentLock
	stopCh  chan struct{}
	expired bool

	onTick   func(remaining time.Duration)
	onExpire func(lock domain.PaymentLock)
}

// Option настройка таймера
type Option func(*Timer)

// WithClock подменяет источник времени
func WithClock(clock TimeProvider) Option {
	return func(t *Timer) {
		t.clock = clock
	}
}

// WithInterval задает период обратного отсчета
func WithInterval(interval time.Duration) Option {
	return func(t *Timer) {
		t.interval = interval
	}
}

// OnTick вызывается на каждом шаге обратного отсчета с оставшимся временем
func OnTick(fn func(remaining time.Duration)) Option {
	return func(t *Timer) {
		t.onTick = fn
	}
}

// OnExpire вызывается один раз, когда блокировка истекла сама
func OnExpire(fn func(lock domain.PaymentLock)) Option {
	return func(t *Timer) {
		t.onExpire = fn
	}
}

// NewTimer создает таймер блокировки; duration <= 0 заменяется значением по умолчанию
func NewTimer(duration time.Duration, opts ...Option) *Timer {
	if duration <= 0 {
		duration = domain.DefaultPaymentLockDuration
	}

	t := &Timer{
		duration: duration,
		interval: domain.CountdownInterval,
		clock:    &RealTimeProvider{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start активирует блокировку от текущего момента без фонового отсчета
func (t *Timer) Start() (domain.PaymentLock, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lock != nil {
		return domain.PaymentLock{}, ErrAlreadyLocked
	}

	t.lock = &domain.PaymentLock{ExpiresAt: t.clock.Now().Add(t.duration)}
	t.expired = false
	return *t.lock, nil
}

// StartCountdown активирует блокировку и запускает обратный отсчет с периодом interval.
// Отсчет останавливается при истечении, Clear или Stop.
func (t *Timer) StartCountdown() (domain.PaymentLock, error) {
	lock, err := t.Start()
	if err != nil {
		return lock, err
	}

	t.mu.Lock()
	stopCh := make(chan struct{})
	t.stopCh = stopCh
	interval := t.interval
	t.mu.Unlock()

	go t.run(stopCh, interval)
	return lock, nil
}

func (t *Timer) run(stopCh chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !t.Tick() {
				return
			}
		}
	}
}

// Tick выполняет один шаг обратного отсчета: remaining = expiresAt - now.
// Если время вышло, блокировка снимается и вызывается OnExpire.
// Возвращает true, пока блокировка активна.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	if t.lock == nil {
		t.mu.Unlock()
		return false
	}

	remaining := t.lock.ExpiresAt.Sub(t.clock.Now())
	if remaining > 0 {
		onTick := t.onTick
		t.mu.Unlock()
		if onTick != nil {
			onTick(remaining)
		}
		return true
	}

	expiredLock := *t.lock
	t.lock = nil
	t.expired = true
	t.closeStopLocked()
	onExpire := t.onExpire
	t.mu.Unlock()

	if onExpire != nil {
		onExpire(expiredLock)
	}
	return false
}

// IsLocked возвращает true, пока now < expiresAt
func (t *Timer) IsLocked() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lock != nil && t.clock.Now().Before(t.lock.ExpiresAt)
}

// Remaining оставшееся время блокировки (0, если блокировки нет)
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lock == nil {
		return 0
	}
	remaining := t.lock.ExpiresAt.Sub(t.clock.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Lock возвращает текущую блокировку, если она существует
func (t *Timer) Lock() (domain.PaymentLock, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lock == nil {
		return domain.PaymentLock{}, false
	}
	return *t.lock, true
}

// Expired возвращает true, если последняя блокировка истекла сама, а не была снята
func (t *Timer) Expired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.expired
}

// Clear снимает блокировку (отмена бронирования или подтверждение оплаты)
func (t *Timer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lock = nil
	t.expired = false
	t.closeStopLocked()
}

// Stop останавливает обратный отсчет, не снимая блокировку
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closeStopLocked()
}

func (t *Timer) closeStopLocked() {
	if t.stopCh != nil {
		close(t.stopCh)
		t.stopCh = nil
	}
}
