package update_draft

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// UpdateDraftRequest HTTP request model; отсутствующее поле не меняется
type UpdateDraftRequest struct {
	SlotID        *string               `json:"slotId,omitempty"`
	SlotLabel     *string               `json:"slotLabel,omitempty"`
	Date          *string               `json:"date,omitempty"` // "2025-10-20"
	BasePrice     *int64                `json:"basePrice,omitempty"`
	HasOpponent   *bool                 `json:"hasOpponent,omitempty"`
	ContactName   *string               `json:"contactName,omitempty"`
	ContactPhone  *string               `json:"contactPhone,omitempty"`
	ContactEmail  *string               `json:"contactEmail,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
	IsRecurring   *bool                 `json:"isRecurring,omitempty"`
	StartDate     *string               `json:"startDate,omitempty"` // "2025-10-20"
	Weekdays      *[]int                `json:"weekdays,omitempty"`  // 0 = воскресенье ... 6 = суббота
	WeekCount     *int                  `json:"weekCount,omitempty"`
	DepositPolicy *DepositPolicyRequest `json:"depositPolicy,omitempty"`
}

// DepositPolicyRequest правила депозита
type DepositPolicyRequest struct {
	Percent *float64 `json:"percent,omitempty"`
	Min     int64    `json:"min,omitempty"`
	Max     int64    `json:"max,omitempty"`
}

// ToDraftPatch конвертирует HTTP запрос в изменения черновика
func (r *UpdateDraftRequest) ToDraftPatch() (flow.DraftPatch, error) {
	patch := flow.DraftPatch{
		SlotID:       r.SlotID,
		SlotLabel:    r.SlotLabel,
		BasePrice:    r.BasePrice,
		HasOpponent:  r.HasOpponent,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		Notes:        r.Notes,
		IsRecurring:  r.IsRecurring,
		WeekCount:    r.WeekCount,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return flow.DraftPatch{}, fmt.Errorf("date: %w", err)
		}
		patch.Date = &date
	}

	if r.StartDate != nil {
		// Пустая строка сбрасывает дату начала
		var start time.Time
		if *r.StartDate != "" {
			parsed, err := time.Parse(domain.DateFormat, *r.StartDate)
			if err != nil {
				return flow.DraftPatch{}, fmt.Errorf("startDate: %w", err)
			}
			start = parsed
		}
		patch.StartDate = &start
	}

	if r.Weekdays != nil {
		weekdays := make([]time.Weekday, 0, len(*r.Weekdays))
		for _, wd := range *r.Weekdays {
			weekdays = append(weekdays, time.Weekday(wd))
		}
		patch.Weekdays = &weekdays
	}

	if r.DepositPolicy != nil {
		patch.DepositPolicy = &domain.DepositPolicy{
			Percent: r.DepositPolicy.Percent,
			Min:     r.DepositPolicy.Min,
			Max:     r.DepositPolicy.Max,
		}
	}

	return patch, nil
}
