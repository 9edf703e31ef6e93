package flow

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/recurrence"
)

// validatePatch проверяет значения, которые нельзя принять в черновик даже временно.
// Полнота черновика проверяется при отправке бронирования.
func validatePatch(p DraftPatch) error {
	if p.BasePrice != nil && (*p.BasePrice < 0 || *p.BasePrice > domain.MaxBasePrice) {
		return fmt.Errorf("%w: basePrice must be in 0..%d", ErrInvalidPatch, domain.MaxBasePrice)
	}

	if p.WeekCount != nil && (*p.WeekCount < 0 || *p.WeekCount > domain.MaxWeekCount) {
		return fmt.Errorf("%w: weekCount must be in 0..%d", ErrInvalidPatch, domain.MaxWeekCount)
	}

	if p.Weekdays != nil {
		for _, wd := range *p.Weekdays {
			if wd < time.Sunday || wd > time.Saturday {
				return fmt.Errorf("%w: weekday %d is out of range 0..6", ErrInvalidPatch, wd)
			}
		}
	}

	if p.DepositPolicy != nil && (p.DepositPolicy.Min < 0 || p.DepositPolicy.Max < 0) {
		return fmt.Errorf("%w: deposit bounds must not be negative", ErrInvalidPatch)
	}

	return nil
}

func applyPatch(d *domain.BookingDraft, p DraftPatch) {
	if p.SlotID != nil {
		d.SlotID = *p.SlotID
	}
	if p.SlotLabel != nil {
		d.SlotLabel = *p.SlotLabel
	}
	if p.Date != nil {
		d.Date = domain.DateOnly(*p.Date)
	}
	if p.BasePrice != nil {
		d.BasePrice = *p.BasePrice
	}
	if p.HasOpponent != nil {
		d.HasOpponent = *p.HasOpponent
	}
	if p.ContactName != nil {
		d.Contact.Name = *p.ContactName
	}
	if p.ContactPhone != nil {
		d.Contact.Phone = *p.ContactPhone
	}
	if p.ContactEmail != nil {
		d.Contact.Email = *p.ContactEmail
	}
	if p.Notes != nil {
		d.Contact.Notes = *p.Notes
	}
	if p.IsRecurring != nil {
		d.IsRecurring = *p.IsRecurring
	}
	if p.StartDate != nil {
		d.Recurrence.StartDate = domain.DateOnly(*p.StartDate)
	}
	if p.Weekdays != nil {
		d.Recurrence.WeekdaySet = recurrence.NormalizeWeekdays(*p.Weekdays)
	}
	if p.WeekCount != nil {
		d.Recurrence.WeekCount = *p.WeekCount
	}
	if p.DepositPolicy != nil {
		policy := *p.DepositPolicy
		if policy.Percent != nil {
			pct := *policy.Percent
			policy.Percent = &pct
		}
		d.DepositPolicy = policy
	}
}
