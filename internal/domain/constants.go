package domain

import "time"

// Pricing constants
const (
	DefaultDepositPercent = 0.30
	MinSessionCount       = 1
	MaxSuggestions        = 3
	SuggestionMinScore    = 0.7
)

// DiscountTier maps a minimum session count to a discount percent
type DiscountTier struct {
	MinSessions int
	Percent     float64
}

// DiscountTiers отсортированы по убыванию порога, применяется первый подходящий
var DiscountTiers = []DiscountTier{
	{MinSessions: 16, Percent: 0.15},
	{MinSessions: 8, Percent: 0.10},
	{MinSessions: 4, Percent: 0.05},
}

// Payment lock
const (
	DefaultPaymentLockDuration = 5 * time.Minute
	CountdownInterval          = time.Second
	FlowEvictionInterval       = time.Minute
)

// ScheduleAssignedByServer is sent instead of a schedule id when no local schedule matched
// the selected slot and date; the field service then creates or picks the schedule itself.
const ScheduleAssignedByServer = "auto"

// MaxBasePrice bounds the price of one session in minor units.
// Subtotal of MaxBasePrice over MaxWeekCount*DaysInWeek sessions stays exact in float64.
const MaxBasePrice int64 = 100_000_000_000

// Business validation constants
const (
	MaxWeekCount      = 52
	MaxContactName    = 100
	MaxNotesLength    = 500
	MinPhoneDigits    = 9
	MaxPhoneDigits    = 15
	DaysInWeek        = 7
	RoleCustomer      = "customer"
	RoleFieldOwner    = "owner"
	RoleAdministrator = "admin"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingEligibleRoles роли, которым разрешено бронировать поля
var BookingEligibleRoles = []string{
	RoleCustomer,
}

// IsBookingEligibleRole returns true if the role may create bookings
func IsBookingEligibleRole(role string) bool {
	for _, r := range BookingEligibleRoles {
		if r == role {
			return true
		}
	}
	return false
}

// DateOnly drops the time of day, keeping the location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay returns true if both times fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
