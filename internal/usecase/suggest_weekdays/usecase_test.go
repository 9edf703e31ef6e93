package suggest_weekdays

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
	"github.com/m04kA/SMC-FieldBookingService/pkg/ptr"
)

func newRegistryWithFlow(t *testing.T, recurring bool) *flow.Registry {
	t.Helper()

	registry := flow.NewRegistry(0, nil)
	draft := &domain.BookingDraft{
		UserID:    42,
		FieldID:   "f-1",
		SlotID:    "slot-18",
		Date:      day(time.October, 13),
		BasePrice: 100_000,
	}
	m := flow.NewMachine("flow-1", draft, nopLogger{}, flow.WithCountdown(false))
	if recurring {
		_, err := m.UpdateDraft(flow.DraftPatch{
			IsRecurring: ptr.Ptr(true),
			StartDate:   ptr.Ptr(day(time.October, 13)),
			Weekdays:    &[]time.Weekday{time.Monday},
			WeekCount:   ptr.Ptr(2),
		})
		require.NoError(t, err)
	}
	require.NoError(t, registry.Add(m))
	return registry
}

func TestUseCase_Execute(t *testing.T) {
	prober := &funcProber{fn: func(date time.Time) (bool, error) {
		return date.Weekday() == time.Wednesday, nil
	}}
	uc := NewUseCase(newRegistryWithFlow(t, true), prober, nopMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FlowID: "flow-1", UserID: 42})
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, time.Wednesday, resp.Suggestions[0].Weekday)
}

func TestUseCase_NotRecurring(t *testing.T) {
	prober := &funcProber{fn: func(time.Time) (bool, error) { return true, nil }}
	uc := NewUseCase(newRegistryWithFlow(t, false), prober, nopMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FlowID: "flow-1", UserID: 42})
	require.NoError(t, err)
	assert.Empty(t, resp.Suggestions)
	assert.Zero(t, prober.calls)
}

func TestUseCase_AccessErrors(t *testing.T) {
	prober := &funcProber{fn: func(time.Time) (bool, error) { return true, nil }}
	uc := NewUseCase(newRegistryWithFlow(t, true), prober, nopMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FlowID: "missing", UserID: 42})
	assert.ErrorIs(t, err, ErrFlowNotFound)

	_, err = uc.Execute(context.Background(), &Request{FlowID: "flow-1", UserID: 7})
	assert.ErrorIs(t, err, ErrForbidden)
}
