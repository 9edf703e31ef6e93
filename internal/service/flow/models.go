package flow

import (
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// Step шаг потока бронирования
type Step string

const (
	StepDetails      Step = "details"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// DraftPatch изменения черновика; nil поле означает "без изменений"
type DraftPatch struct {
	SlotID        *string
	SlotLabel     *string
	Date          *time.Time
	BasePrice     *int64
	HasOpponent   *bool
	ContactName   *string
	ContactPhone  *string
	ContactEmail  *string
	Notes         *string
	IsRecurring   *bool
	StartDate     *time.Time
	Weekdays      *[]time.Weekday
	WeekCount     *int
	DepositPolicy *domain.DepositPolicy
}

// Snapshot неизменяемая копия состояния потока
type Snapshot struct {
	FlowID        string
	Step          Step
	Draft         *domain.BookingDraft
	Sessions      []domain.Session
	Record        *domain.BookingRecord
	Lock          *domain.PaymentLock
	LockRemaining time.Duration
	LockExpired   bool
	Closed        bool
}

// IsLocked returns true if the snapshot was taken while the payment lock was active
func (s *Snapshot) IsLocked() bool {
	return s.Lock != nil && s.LockRemaining > 0
}
