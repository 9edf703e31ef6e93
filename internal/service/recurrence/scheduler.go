package recurrence

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// Generate разворачивает дату начала, набор дней недели и количество недель
// в упорядоченный по времени список сессий.
//
// Окно генерации: [startDate, startDate + weekCount*7 - 1] включительно.
// Результат ограничен weekCount × |weekdaySet| сессиями.
// При пустом наборе дней или weekCount <= 0 возвращается пустой список.
func Generate(startDate time.Time, weekdaySet []time.Weekday, weekCount int, slotLabel string) []domain.Session {
	weekdays := NormalizeWeekdays(weekdaySet)
	if len(weekdays) == 0 || weekCount <= 0 || startDate.IsZero() {
		return []domain.Session{}
	}

	limit := weekCount * len(weekdays)
	sessions := make([]domain.Session, 0, limit)

	start := domain.DateOnly(startDate)
	end := start.AddDate(0, 0, weekCount*domain.DaysInWeek-1)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !containsWeekday(weekdays, day.Weekday()) {
			continue
		}
		sessions = append(sessions, domain.Session{
			Date:      day,
			SlotLabel: slotLabel,
		})
	}

	if len(sessions) > limit {
		sessions = sessions[:limit]
	}

	return sessions
}

// FromConfig генерирует сессии по конфигурации повторения
func FromConfig(cfg *domain.RecurrenceConfig, slotLabel string) []domain.Session {
	if cfg == nil {
		return []domain.Session{}
	}
	return Generate(cfg.StartDate, cfg.WeekdaySet, cfg.WeekCount, slotLabel)
}

// NormalizeWeekdays убирает дубликаты и значения вне диапазона 0..6, сортирует по возрастанию
func NormalizeWeekdays(weekdays []time.Weekday) []time.Weekday {
	seen := make(map[time.Weekday]struct{}, len(weekdays))
	result := make([]time.Weekday, 0, len(weekdays))

	for _, wd := range weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			continue
		}
		if _, ok := seen[wd]; ok {
			continue
		}
		seen[wd] = struct{}{}
		result = append(result, wd)
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// FirstOccurrence возвращает первую дату с указанным днем недели, не раньше from
func FirstOccurrence(from time.Time, wd time.Weekday) time.Time {
	day := domain.DateOnly(from)
	offset := (int(wd) - int(day.Weekday()) + domain.DaysInWeek) % domain.DaysInWeek
	return day.AddDate(0, 0, offset)
}

func containsWeekday(weekdays []time.Weekday, wd time.Weekday) bool {
	for _, d := range weekdays {
		if d == wd {
			return true
		}
	}
	return false
}
