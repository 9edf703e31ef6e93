package domain

import "time"

// BookingStatus represents the status of a booking on the field service side
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the deposit payment state reported by the field service
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// BookingRecord represents a booking confirmed by the field service
type BookingRecord struct {
	BookingID       string
	ScheduleID      string
	BookingStatus   BookingStatus
	PaymentStatus   PaymentStatus
	QRArtifact      string     // Displayable payment QR (URI)
	QRExpiresAt     *time.Time // nil если сервер не прислал срок действия
	TotalPrice      int64
	DepositAmount   int64
	RemainingAmount int64
}

// HasPaymentArtifact returns true if a payment QR is already present
func (r *BookingRecord) HasPaymentArtifact() bool {
	return r.QRArtifact != ""
}

// HistoryEntry represents a confirmed booking stored in the local history
type HistoryEntry struct {
	BookingID       string
	UserID          int64
	FieldID         string
	SlotID          string
	SlotLabel       string
	BookingDate     time.Time
	IsRecurring     bool
	SessionCount    int
	TotalPrice      int64
	DepositAmount   int64
	RemainingAmount int64
	BookingStatus   BookingStatus
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
}

// HistoryFilter selects history entries of one user
type HistoryFilter struct {
	UserID int64
	Status *BookingStatus // nil - все статусы
	Limit  uint64         // 0 - без ограничения
	Offset uint64
}
