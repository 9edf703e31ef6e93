package domain

import "time"

// Schedule binds a field, a date and a slot on the field service side
type Schedule struct {
	ID        string
	FieldID   string
	SlotID    string
	Date      time.Time
	Available bool
}

// Matches returns true if the schedule is for the given slot on the given calendar day
func (s *Schedule) Matches(slotID string, date time.Time) bool {
	return s.SlotID == slotID && SameDay(s.Date, date)
}

// Availability is the result of an availability probe
type Availability struct {
	Available bool
	Message   string
}

// BankAccount holds display fields for the payment step
type BankAccount struct {
	ID            string
	OwnerID       string
	BankName      string
	AccountNumber string
	AccountHolder string
}
