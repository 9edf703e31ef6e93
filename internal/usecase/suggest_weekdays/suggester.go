package suggest_weekdays

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/recurrence"
)

const (
	probeAvailable   = "available"
	probeUnavailable = "unavailable"
	probeFailed      = "error"
)

// Suggester подбирает дни недели, свободные на всем окне повторения
type Suggester struct {
	prober  AvailabilityProber
	metrics Metrics
	logger  Logger
}

// NewSuggester создает новый экземпляр подборщика
func NewSuggester(prober AvailabilityProber, metrics Metrics, logger Logger) *Suggester {
	return &Suggester{
		prober:  prober,
		metrics: metrics,
		logger:  logger,
	}
}

// Suggest возвращает до трех дней недели со score >= 0.7, по убыванию score.
// При равном score порядок по возрастанию дня недели.
// Любая ошибка проверки сбрасывает результат в пустой список.
func (s *Suggester) Suggest(ctx context.Context, in Input) []Suggestion {
	if in.StartDate.IsZero() || in.WeekCount <= 0 {
		return []Suggestion{}
	}

	candidates := candidateWeekdays(in.WeekdaySet)
	if len(candidates) == 0 {
		return []Suggestion{}
	}

	// Все проверки запускаются одновременно, без ограничения параллелизма
	counters := make([]int64, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	start := domain.DateOnly(in.StartDate)

	for i, wd := range candidates {
		first := recurrence.FirstOccurrence(start, wd)
		for week := 0; week < in.WeekCount; week++ {
			i, date := i, first.AddDate(0, 0, week*domain.DaysInWeek)
			g.Go(func() error {
				avail, err := s.prober.CheckAvailability(gctx, in.FieldID, date, in.SlotID)
				if err != nil {
					s.metrics.IncProbe(probeFailed)
					return err
				}
				if avail != nil && avail.Available {
					s.metrics.IncProbe(probeAvailable)
					atomic.AddInt64(&counters[i], 1)
				} else {
					s.metrics.IncProbe(probeUnavailable)
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("SuggestWeekdays: probe failed, suggestions reset: %v", err)
		s.metrics.IncSuggestionReset()
		return []Suggestion{}
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for i, wd := range candidates {
		available := int(atomic.LoadInt64(&counters[i]))
		score := float64(available) / float64(in.WeekCount)
		if score < domain.SuggestionMinScore {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Weekday:   wd,
			Available: available,
			Probed:    in.WeekCount,
			Score:     score,
		})
	}

	sort.SliceStable(suggestions, func(a, b int) bool {
		return suggestions[a].Score > suggestions[b].Score
	})

	if len(suggestions) > domain.MaxSuggestions {
		suggestions = suggestions[:domain.MaxSuggestions]
	}
	return suggestions
}

// candidateWeekdays дни 0..6, которых нет в наборе, по возрастанию
func candidateWeekdays(set []time.Weekday) []time.Weekday {
	var taken [domain.DaysInWeek]bool
	for _, wd := range set {
		if wd >= time.Sunday && wd <= time.Saturday {
			taken[wd] = true
		}
	}

	candidates := make([]time.Weekday, 0, domain.DaysInWeek)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if !taken[wd] {
			candidates = append(candidates, wd)
		}
	}
	return candidates
}
