package flow

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/paymentlock"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/pricing"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/recurrence"
)

// Machine машина состояний одного потока бронирования: details → payment → confirmation,
// плюс payment → details через подтвержденную отмену.
//
// Machine единолично владеет черновиком. После каждого изменения черновика
// стоимость и список сессий пересчитываются одним вызовом derive.
type Machine struct {
	mu sync.Mutex

	id       string
	step     Step
	draft    *domain.BookingDraft
	sessions []domain.Session
	record   *domain.BookingRecord
	lock     *paymentlock.Timer
	closed   bool

	// submitting true, пока идет запрос на создание бронирования
	submitting bool

	// lastActivity время последнего обращения к потоку, для вытеснения брошенных потоков
	lastActivity time.Time

	lockDuration time.Duration
	countdown    bool
	clock        TimeProvider
	logger       Logger
	onLockExpire func(flowID string, lock domain.PaymentLock)
}

// Option настройка машины состояний
type Option func(*Machine)

// WithClock подменяет источник времени (для тестирования)
func WithClock(clock TimeProvider) Option {
	return func(m *Machine) {
		m.clock = clock
	}
}

// WithLockDuration задает длительность блокировки оплаты
func WithLockDuration(d time.Duration) Option {
	return func(m *Machine) {
		m.lockDuration = d
	}
}

// WithCountdown включает или выключает фоновый обратный отсчет блокировки
func WithCountdown(enabled bool) Option {
	return func(m *Machine) {
		m.countdown = enabled
	}
}

// WithLockExpiryHandler вызывается, когда блокировка оплаты истекла сама
func WithLockExpiryHandler(fn func(flowID string, lock domain.PaymentLock)) Option {
	return func(m *Machine) {
		m.onLockExpire = fn
	}
}

// NewMachine создает поток на шаге details; черновик копируется
func NewMachine(id string, draft *domain.BookingDraft, logger Logger, opts ...Option) *Machine {
	m := &Machine{
		id:           id,
		step:         StepDetails,
		draft:        draft.Clone(),
		lockDuration: domain.DefaultPaymentLockDuration,
		countdown:    true,
		clock:        &RealTimeProvider{},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.draft.Recurrence.WeekdaySet = recurrence.NormalizeWeekdays(m.draft.Recurrence.WeekdaySet)
	m.derive()
	m.lastActivity = m.clock.Now()
	return m
}

// ID идентификатор потока
func (m *Machine) ID() string {
	return m.id
}

// UserID владелец потока
func (m *Machine) UserID() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.draft.UserID
}

// Step текущий шаг
func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.step
}

// Snapshot возвращает копию текущего состояния
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.touchLocked()
	return m.snapshotLocked()
}

// UpdateDraft применяет изменения к черновику и пересчитывает производные значения
func (m *Machine) UpdateDraft(patch DraftPatch) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Snapshot{}, ErrFlowClosed
	}
	if m.step != StepDetails {
		return Snapshot{}, fmt.Errorf("%w: current step is %s", ErrDraftNotEditable, m.step)
	}

	if m.submitting {
		return Snapshot{}, ErrSubmissionInProgress
	}

	if err := validatePatch(patch); err != nil {
		return Snapshot{}, err
	}

	applyPatch(m.draft, patch)
	m.derive()
	m.touchLocked()

	return m.snapshotLocked(), nil
}

// BeginSubmission помечает поток как отправляемый и возвращает снимок черновика,
// по которому будет создано бронирование. Пока отправка не завершена,
// черновик не меняется и вторая отправка отклоняется.
// release нужно вызвать после EnterPayment или ошибки отправки.
func (m *Machine) BeginSubmission() (snap Snapshot, release func(), err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Snapshot{}, nil, ErrFlowClosed
	}
	if m.step != StepDetails {
		return Snapshot{}, nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.step, StepPayment)
	}
	if m.submitting {
		return Snapshot{}, nil, ErrSubmissionInProgress
	}

	m.submitting = true
	m.touchLocked()
	var once sync.Once
	release = func() {
		once.Do(func() {
			m.mu.Lock()
			m.submitting = false
			m.touchLocked()
			m.mu.Unlock()
		})
	}
	return m.snapshotLocked(), release, nil
}

// EnterPayment переводит поток на шаг оплаты после успешного создания бронирования на сервере
// и запускает блокировку оплаты
func (m *Machine) EnterPayment(record *domain.BookingRecord) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Snapshot{}, ErrFlowClosed
	}
	if m.step != StepDetails {
		return Snapshot{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.step, StepPayment)
	}
	if record == nil || record.BookingID == "" {
		return Snapshot{}, ErrMissingBookingID
	}

	timer := paymentlock.NewTimer(m.lockDuration,
		paymentlock.WithClock(m.clock),
		paymentlock.OnExpire(m.handleLockExpired),
	)

	var (
		lock domain.PaymentLock
		err  error
	)
	if m.countdown {
		lock, err = timer.StartCountdown()
	} else {
		lock, err = timer.Start()
	}
	if err != nil {
		return Snapshot{}, err
	}

	rec := *record
	m.record = &rec
	m.lock = timer
	m.step = StepPayment
	m.touchLocked()

	m.logger.Info("Flow %s: entered payment, booking=%s, locked until %s",
		m.id, rec.BookingID, lock.ExpiresAt.Format(time.RFC3339))

	return m.snapshotLocked(), nil
}

// CancelPayment отменяет бронирование на шаге оплаты. Требует подтверждения пользователя,
// снимает блокировку и возвращает поток на шаг details.
// Возвращает отмененную запись бронирования.
func (m *Machine) CancelPayment(confirmed bool) (*domain.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrFlowClosed
	}
	if m.step != StepPayment {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.step, StepDetails)
	}
	if !confirmed {
		return nil, ErrCancelNotConfirmed
	}

	cancelled := m.record
	m.clearLockLocked()
	m.record = nil
	m.step = StepDetails
	m.touchLocked()

	m.logger.Info("Flow %s: payment cancelled by user, booking=%s", m.id, cancelled.BookingID)
	return cancelled, nil
}

// ConfirmPayment переводит поток на шаг подтверждения.
// Требует наличия QR для оплаты.
func (m *Machine) ConfirmPayment() (*domain.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrFlowClosed
	}
	if m.step != StepPayment {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.step, StepConfirmation)
	}
	if m.record == nil || !m.record.HasPaymentArtifact() {
		return nil, ErrMissingPaymentArtifact
	}

	m.clearLockLocked()
	m.step = StepConfirmation
	m.touchLocked()

	rec := *m.record
	m.logger.Info("Flow %s: payment confirmed, booking=%s", m.id, rec.BookingID)
	return &rec, nil
}

// Dismiss попытка свернуть окно бронирования (закрытие модального окна, клик по подложке).
// Запрещено во время блокировки оплаты и пока отправляется бронирование.
func (m *Machine) Dismiss() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.submitting {
		return ErrSubmissionInProgress
	}
	if m.isLockedLocked() {
		return ErrPaymentLocked
	}
	m.touchLocked()
	return nil
}

// Close закрывает поток (уход со страницы).
// Запрещено во время блокировки оплаты и пока отправляется бронирование:
// иначе созданное на сервере бронирование останется без потока.
func (m *Machine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closeLocked()
}

// CloseIfIdle закрывает поток, если к нему не обращались дольше ttl.
// Заблокированный или отправляемый поток не закрывается.
func (m *Machine) CloseIfIdle(now time.Time, ttl time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || now.Sub(m.lastActivity) < ttl {
		return false
	}
	if err := m.closeLocked(); err != nil {
		return false
	}
	m.logger.Info("Flow %s: evicted after %s of inactivity", m.id, now.Sub(m.lastActivity).Round(time.Second))
	return true
}

func (m *Machine) closeLocked() error {
	if m.closed {
		return nil
	}
	if m.submitting {
		return ErrSubmissionInProgress
	}
	if m.isLockedLocked() {
		return ErrPaymentLocked
	}

	m.clearLockLocked()
	m.closed = true
	m.logger.Info("Flow %s: closed on step %s", m.id, m.step)
	return nil
}

// IsLocked возвращает true, пока действует блокировка оплаты
func (m *Machine) IsLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.isLockedLocked()
}

// derive пересчитывает стоимость и сессии по текущему черновику
func (m *Machine) derive() {
	m.draft.Pricing = pricing.DeriveForDraft(m.draft)

	if rec := m.draft.ActiveRecurrence(); rec.IsEnabled() {
		m.sessions = recurrence.FromConfig(rec, m.draft.SlotLabel)
		return
	}

	m.sessions = []domain.Session{}
	if !m.draft.Date.IsZero() {
		m.sessions = append(m.sessions, domain.Session{
			Date:      domain.DateOnly(m.draft.Date),
			SlotLabel: m.draft.SlotLabel,
		})
	}
}

func (m *Machine) handleLockExpired(lock domain.PaymentLock) {
	// Шаг не меняется, серверное бронирование остается в статусе pending
	m.logger.Warn("Flow %s: payment lock expired at %s", m.id, lock.ExpiresAt.Format(time.RFC3339))
	if m.onLockExpire != nil {
		m.onLockExpire(m.id, lock)
	}
}

func (m *Machine) touchLocked() {
	m.lastActivity = m.clock.Now()
}

func (m *Machine) isLockedLocked() bool {
	return m.lock != nil && m.lock.IsLocked()
}

func (m *Machine) clearLockLocked() {
	if m.lock != nil {
		m.lock.Clear()
		m.lock = nil
	}
}

func (m *Machine) snapshotLocked() Snapshot {
	snap := Snapshot{
		FlowID:   m.id,
		Step:     m.step,
		Draft:    m.draft.Clone(),
		Sessions: append([]domain.Session(nil), m.sessions...),
		Closed:   m.closed,
	}

	if m.record != nil {
		rec := *m.record
		snap.Record = &rec
	}

	if m.lock != nil {
		if lock, ok := m.lock.Lock(); ok {
			snap.Lock = &lock
			snap.LockRemaining = m.lock.Remaining()
		}
		snap.LockExpired = m.lock.Expired()
	}

	return snap
}
