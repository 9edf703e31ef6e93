package paymentlock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC)}
}

func TestTimer_LockedUntilExpiry(t *testing.T) {
	clock := newClock()
	timer := NewTimer(5*time.Minute, WithClock(clock))

	lock, err := timer.Start()
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(5*time.Minute), lock.ExpiresAt)

	for i := 0; i < 300; i++ {
		assert.True(t, timer.IsLocked(), "second %d", i)
		clock.Advance(time.Second)
	}

	// now == expiresAt
	assert.False(t, timer.IsLocked())
}

func TestTimer_DefaultDuration(t *testing.T) {
	clock := newClock()
	timer := NewTimer(0, WithClock(clock))

	lock, err := timer.Start()
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(domain.DefaultPaymentLockDuration), lock.ExpiresAt)
}

func TestTimer_StartTwice(t *testing.T) {
	timer := NewTimer(time.Minute, WithClock(newClock()))

	_, err := timer.Start()
	require.NoError(t, err)

	_, err = timer.Start()
	assert.ErrorIs(t, err, ErrAlreadyLocked)
}

func TestTimer_TickExpiresExactlyOnce(t *testing.T) {
	clock := newClock()
	var ticks []time.Duration
	expirations := 0

	timer := NewTimer(3*time.Second,
		WithClock(clock),
		OnTick(func(remaining time.Duration) { ticks = append(ticks, remaining) }),
		OnExpire(func(domain.PaymentLock) { expirations++ }),
	)
	_, err := timer.Start()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		clock.Advance(time.Second)
		assert.True(t, timer.Tick())
	}
	assert.Equal(t, []time.Duration{2 * time.Second, time.Second}, ticks)

	clock.Advance(time.Second)
	assert.False(t, timer.Tick())
	assert.False(t, timer.Tick())

	assert.Equal(t, 1, expirations)
	assert.False(t, timer.IsLocked())
	assert.True(t, timer.Expired())
	_, ok := timer.Lock()
	assert.False(t, ok)
}

func TestTimer_RemainingAndClear(t *testing.T) {
	clock := newClock()
	timer := NewTimer(5*time.Minute, WithClock(clock))

	assert.Equal(t, time.Duration(0), timer.Remaining())

	_, err := timer.Start()
	require.NoError(t, err)
	clock.Advance(90 * time.Second)
	assert.Equal(t, 210*time.Second, timer.Remaining())

	timer.Clear()
	assert.False(t, timer.IsLocked())
	assert.False(t, timer.Expired())
	assert.Equal(t, time.Duration(0), timer.Remaining())

	// После снятия блокировку можно запустить заново
	_, err = timer.Start()
	assert.NoError(t, err)
}

func TestTimer_CountdownExpiresInBackground(t *testing.T) {
	expired := make(chan domain.PaymentLock, 1)

	timer := NewTimer(30*time.Millisecond,
		WithInterval(5*time.Millisecond),
		OnExpire(func(lock domain.PaymentLock) { expired <- lock }),
	)

	_, err := timer.StartCountdown()
	require.NoError(t, err)

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("lock did not expire")
	}
	assert.False(t, timer.IsLocked())
}

func TestTimer_ClearStopsCountdown(t *testing.T) {
	expirations := 0
	var mu sync.Mutex

	timer := NewTimer(20*time.Millisecond,
		WithInterval(5*time.Millisecond),
		OnExpire(func(domain.PaymentLock) {
			mu.Lock()
			expirations++
			mu.Unlock()
		}),
	)

	_, err := timer.StartCountdown()
	require.NoError(t, err)
	timer.Clear()

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, expirations)
}
