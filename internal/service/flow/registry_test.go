package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddGetClose(t *testing.T) {
	var active []int
	r := NewRegistry(2, func(n int) { active = append(active, n) })

	m1 := NewMachine("a", newTestDraft(), nopLogger{}, WithCountdown(false))
	m2 := NewMachine("b", newTestDraft(), nopLogger{}, WithCountdown(false))
	m3 := NewMachine("c", newTestDraft(), nopLogger{}, WithCountdown(false))

	require.NoError(t, r.Add(m1))
	require.NoError(t, r.Add(m2))
	assert.ErrorIs(t, r.Add(m3), ErrTooManyFlows)

	got, err := r.Get("a")
	require.NoError(t, err)
	assert.Same(t, m1, got)

	require.NoError(t, r.Close("a"))
	_, err = r.Get("a")
	assert.ErrorIs(t, err, ErrFlowNotFound)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []int{1, 2, 1}, active)

	assert.ErrorIs(t, r.Close("missing"), ErrFlowNotFound)
}

func TestRegistry_CloseRefusedWhileLocked(t *testing.T) {
	r := NewRegistry(0, nil)
	m := NewMachine("a", newTestDraft(), nopLogger{}, WithCountdown(false))
	require.NoError(t, r.Add(m))

	_, err := m.EnterPayment(testRecord())
	require.NoError(t, err)

	assert.ErrorIs(t, r.Close("a"), ErrPaymentLocked)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_FlowsAreIsolated(t *testing.T) {
	r := NewRegistry(0, nil)
	m1 := NewMachine("a", newTestDraft(), nopLogger{}, WithCountdown(false))
	m2 := NewMachine("b", newTestDraft(), nopLogger{}, WithCountdown(false))
	require.NoError(t, r.Add(m1))
	require.NoError(t, r.Add(m2))

	_, err := m1.EnterPayment(testRecord())
	require.NoError(t, err)

	assert.True(t, m1.IsLocked())
	assert.False(t, m2.IsLocked())
	assert.Equal(t, StepDetails, m2.Step())
}

func TestRegistry_CloseRefusedWhileSubmitting(t *testing.T) {
	r := NewRegistry(0, nil)
	m := NewMachine("a", newTestDraft(), nopLogger{}, WithCountdown(false))
	require.NoError(t, r.Add(m))

	_, release, err := m.BeginSubmission()
	require.NoError(t, err)

	assert.ErrorIs(t, r.Close("a"), ErrSubmissionInProgress)
	assert.Equal(t, 1, r.Len())

	// бронирование, созданное во время отправки, остается привязанным к потоку
	_, err = m.EnterPayment(testRecord())
	require.NoError(t, err)
	release()

	got, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, StepPayment, got.Step())
}

func TestRegistry_EvictIdle(t *testing.T) {
	clock := newTestClock()
	var active []int
	r := NewRegistry(2, func(n int) { active = append(active, n) })

	idle := NewMachine("idle", newTestDraft(), nopLogger{}, WithClock(clock), WithCountdown(false))
	require.NoError(t, r.Add(idle))

	clock.Advance(20 * time.Minute)
	locked := NewMachine("locked", newTestDraft(), nopLogger{}, WithClock(clock), WithCountdown(false))
	require.NoError(t, r.Add(locked))
	_, err := locked.EnterPayment(testRecord())
	require.NoError(t, err)

	clock.Advance(time.Minute)
	assert.Nil(t, r.EvictIdle(clock.Now(), 30*time.Minute))

	clock.Advance(10 * time.Minute)
	evicted := r.EvictIdle(clock.Now(), 30*time.Minute)
	assert.Equal(t, []string{"idle"}, evicted)
	assert.Equal(t, 1, r.Len())

	_, err = r.Get("idle")
	assert.ErrorIs(t, err, ErrFlowNotFound)

	// освободившееся место доступно новому потоку
	require.NoError(t, r.Add(NewMachine("fresh", newTestDraft(), nopLogger{}, WithCountdown(false))))
	assert.Equal(t, []int{1, 2, 1, 2}, active)
}
