package domain

import "time"

// RecurrenceConfig describes a booking repeated on weekdays over a number of weeks
type RecurrenceConfig struct {
	StartDate  time.Time
	WeekdaySet []time.Weekday // Отсортированы по возрастанию, без дубликатов
	WeekCount  int
}

// IsEnabled returns true if the configuration yields at least one session
func (c *RecurrenceConfig) IsEnabled() bool {
	return c != nil && len(c.WeekdaySet) > 0 && c.WeekCount > 0
}

// HasWeekday returns true if the weekday is part of the set
func (c *RecurrenceConfig) HasWeekday(wd time.Weekday) bool {
	if c == nil {
		return false
	}
	for _, d := range c.WeekdaySet {
		if d == wd {
			return true
		}
	}
	return false
}

// Session is a single generated occurrence of a booking
type Session struct {
	Date      time.Time
	SlotLabel string
}

// Contact holds the customer contact fields of a draft
type Contact struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// BookingDraft is the mutable working state of a reservation flow
type BookingDraft struct {
	UserID        int64
	FieldID       string
	SlotID        string
	SlotLabel     string
	Date          time.Time
	BasePrice     int64
	OwnerID       string
	BankAccountID string
	HasOpponent   bool

	Contact Contact

	IsRecurring bool
	Recurrence  RecurrenceConfig

	DepositPolicy DepositPolicy
	Pricing       PricingBreakdown
}

// Clone returns a deep copy of the draft
func (d *BookingDraft) Clone() *BookingDraft {
	cp := *d
	cp.Recurrence.WeekdaySet = append([]time.Weekday(nil), d.Recurrence.WeekdaySet...)
	if d.DepositPolicy.Percent != nil {
		p := *d.DepositPolicy.Percent
		cp.DepositPolicy.Percent = &p
	}
	return &cp
}

// ActiveRecurrence returns the recurrence config if recurrence is toggled on, nil otherwise
func (d *BookingDraft) ActiveRecurrence() *RecurrenceConfig {
	if !d.IsRecurring {
		return nil
	}
	return &d.Recurrence
}

// PaymentLock exists only while the flow is in the payment step
type PaymentLock struct {
	ExpiresAt time.Time
}
