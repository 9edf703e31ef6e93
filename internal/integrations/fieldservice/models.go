package fieldservice

// AvailabilityResponse ответ проверки доступности слота
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// RecurrencePayload параметры повторения бронирования
type RecurrencePayload struct {
	StartDate string `json:"startDate"` // YYYY-MM-DD
	Weekdays  []int  `json:"weekdays"`  // 0 = воскресенье
	WeekCount int    `json:"weekCount"`
}

// SessionPayload одна сессия повторяющегося бронирования
type SessionPayload struct {
	Date      string `json:"date"`
	SlotLabel string `json:"slotLabel"`
}

// CreateBookingRequest тело запроса на создание бронирования
type CreateBookingRequest struct {
	UserID        int64              `json:"userId"`
	FieldID       string             `json:"fieldId"`
	SlotID        string             `json:"slotId"`
	ScheduleID    string             `json:"scheduleId"`
	Date          string             `json:"date"`
	ContactName   string             `json:"contactName"`
	Phone         string             `json:"phone"`
	Email         string             `json:"email,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	HasOpponent   bool               `json:"hasOpponent"`
	IsRecurring   bool               `json:"isRecurring"`
	Recurrence    *RecurrencePayload `json:"recurrence,omitempty"`
	Sessions      []SessionPayload   `json:"sessions"`
	TotalPrice    int64              `json:"totalPrice"`
	DepositAmount int64              `json:"depositAmount"`
}

// BookingResponse ответ на создание бронирования.
// Суммы могут отсутствовать, тогда используется локальный расчет.
type BookingResponse struct {
	BookingID       string  `json:"bookingId"`
	ScheduleID      string  `json:"scheduleId"`
	BookingStatus   string  `json:"bookingStatus"`
	PaymentStatus   string  `json:"paymentStatus"`
	QRCode          string  `json:"qrCode"`
	QRExpiresAt     *string `json:"qrExpiresAt,omitempty"` // RFC3339
	TotalPrice      *int64  `json:"totalPrice,omitempty"`
	DepositAmount   *int64  `json:"depositAmount,omitempty"`
	RemainingAmount *int64  `json:"remainingAmount,omitempty"`
}

// ScheduleResponse элемент расписания поля
type ScheduleResponse struct {
	ID        string `json:"id"`
	FieldID   string `json:"fieldId"`
	SlotID    string `json:"slotId"`
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// BankAccountResponse банковский счет владельца поля
type BankAccountResponse struct {
	ID            string `json:"id"`
	OwnerID       string `json:"ownerId"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

// ErrorResponse модель ошибки от FieldService
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	// codeDurationLimit код ошибки превышения лимита длительности
	codeDurationLimit = "duration_limit_exceeded"
	// codeSlotConflict код ошибки занятого слота
	codeSlotConflict = "slot_conflict"
)
