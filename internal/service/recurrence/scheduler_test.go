package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_Disabled(t *testing.T) {
	start := date(2025, 10, 13)

	assert.Empty(t, Generate(start, nil, 4, "18:00-19:00"))
	assert.Empty(t, Generate(start, []time.Weekday{time.Monday}, 0, "18:00-19:00"))
	assert.Empty(t, Generate(start, []time.Weekday{time.Monday}, -2, "18:00-19:00"))
	assert.Empty(t, Generate(time.Time{}, []time.Weekday{time.Monday}, 2, "18:00-19:00"))
}

func TestGenerate_MondayAndThursdayForTwoWeeks(t *testing.T) {
	// 13.10.2025 - понедельник
	start := date(2025, 10, 13)

	sessions := Generate(start, []time.Weekday{time.Thursday, time.Monday}, 2, "18:00-19:00")

	require.Len(t, sessions, 4)
	assert.Equal(t, date(2025, 10, 13), sessions[0].Date)
	assert.Equal(t, date(2025, 10, 16), sessions[1].Date)
	assert.Equal(t, date(2025, 10, 20), sessions[2].Date)
	assert.Equal(t, date(2025, 10, 23), sessions[3].Date)
	for _, s := range sessions {
		assert.Equal(t, "18:00-19:00", s.SlotLabel)
	}
}

func TestGenerate_StartMidWeek(t *testing.T) {
	// 15.10.2025 - среда; окно 15.10 - 28.10, понедельники 20.10 и 27.10
	start := date(2025, 10, 15)

	sessions := Generate(start, []time.Weekday{time.Monday}, 2, "07:00")

	require.Len(t, sessions, 2)
	assert.Equal(t, date(2025, 10, 20), sessions[0].Date)
	assert.Equal(t, date(2025, 10, 27), sessions[1].Date)
}

func TestGenerate_DropsTimeOfDay(t *testing.T) {
	start := time.Date(2025, 10, 13, 21, 45, 0, 0, time.UTC)

	sessions := Generate(start, []time.Weekday{time.Monday}, 1, "x")

	require.Len(t, sessions, 1)
	assert.Equal(t, date(2025, 10, 13), sessions[0].Date)
}

func TestGenerate_Properties(t *testing.T) {
	start := date(2025, 12, 29) // через границу года
	sets := [][]time.Weekday{
		{time.Sunday},
		{time.Saturday, time.Sunday},
		{time.Monday, time.Wednesday, time.Friday},
		{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
	}

	for _, set := range sets {
		for weeks := 1; weeks <= 20; weeks++ {
			sessions := Generate(start, set, weeks, "slot")

			assert.Len(t, sessions, weeks*len(set))
			for i, s := range sessions {
				assert.Contains(t, set, s.Date.Weekday())
				if i > 0 {
					assert.True(t, s.Date.After(sessions[i-1].Date), "dates must strictly increase")
				}
			}
		}
	}
}

func TestGenerate_IgnoresDuplicatesAndInvalidWeekdays(t *testing.T) {
	start := date(2025, 10, 13)

	sessions := Generate(start, []time.Weekday{time.Monday, time.Monday, 9, -1}, 3, "slot")

	assert.Len(t, sessions, 3)
}

func TestFromConfig(t *testing.T) {
	assert.Empty(t, FromConfig(nil, "slot"))

	cfg := &domain.RecurrenceConfig{
		StartDate:  date(2025, 10, 13),
		WeekdaySet: []time.Weekday{time.Tuesday},
		WeekCount:  3,
	}
	sessions := FromConfig(cfg, "slot")
	require.Len(t, sessions, 3)
	assert.Equal(t, date(2025, 10, 14), sessions[0].Date)
}

func TestNormalizeWeekdays(t *testing.T) {
	got := NormalizeWeekdays([]time.Weekday{time.Saturday, time.Monday, time.Saturday, 7})
	assert.Equal(t, []time.Weekday{time.Monday, time.Saturday}, got)
}

func TestFirstOccurrence(t *testing.T) {
	wed := date(2025, 10, 15)

	assert.Equal(t, wed, FirstOccurrence(wed, time.Wednesday))
	assert.Equal(t, date(2025, 10, 16), FirstOccurrence(wed, time.Thursday))
	assert.Equal(t, date(2025, 10, 19), FirstOccurrence(wed, time.Sunday))
	assert.Equal(t, date(2025, 10, 21), FirstOccurrence(wed, time.Tuesday))
}
