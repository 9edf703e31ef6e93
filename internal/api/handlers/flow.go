package handlers

import (
	"math"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// FlowResponse состояние потока бронирования для клиента
type FlowResponse struct {
	FlowID               string                 `json:"flowId"`
	Step                 string                 `json:"step"`
	Draft                *DraftResponse         `json:"draft,omitempty"`
	Pricing              *PricingResponse       `json:"pricing,omitempty"`
	Sessions             []SessionResponse      `json:"sessions"`
	Booking              *BookingRecordResponse `json:"booking,omitempty"`
	Locked               bool                   `json:"locked"`
	LockExpiresAt        *time.Time             `json:"lockExpiresAt,omitempty"`
	LockRemainingSeconds int                    `json:"lockRemainingSeconds"`
	LockExpired          bool                   `json:"lockExpired"`
}

// DraftResponse черновик бронирования
type DraftResponse struct {
	FieldID       string                `json:"fieldId"`
	SlotID        string                `json:"slotId"`
	SlotLabel     string                `json:"slotLabel"`
	Date          string                `json:"date"` // "2025-10-20"
	BasePrice     int64                 `json:"basePrice"`
	HasOpponent   bool                  `json:"hasOpponent"`
	ContactName   string                `json:"contactName"`
	ContactPhone  string                `json:"contactPhone"`
	ContactEmail  string                `json:"contactEmail,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	IsRecurring   bool                  `json:"isRecurring"`
	Recurrence    RecurrenceResponse    `json:"recurrence"`
	DepositPolicy DepositPolicyResponse `json:"depositPolicy"`
}

// RecurrenceResponse настройки повторения
type RecurrenceResponse struct {
	StartDate string `json:"startDate,omitempty"`
	Weekdays  []int  `json:"weekdays"`
	WeekCount int    `json:"weekCount"`
}

// DepositPolicyResponse правила депозита
type DepositPolicyResponse struct {
	Percent *float64 `json:"percent,omitempty"`
	Min     int64    `json:"min"`
	Max     int64    `json:"max"`
}

// PricingResponse расчет стоимости
type PricingResponse struct {
	SessionCount    int     `json:"sessionCount"`
	Subtotal        int64   `json:"subtotal"`
	DiscountPercent float64 `json:"discountPercent"`
	DiscountAmount  int64   `json:"discountAmount"`
	Total           int64   `json:"total"`
	DepositAmount   int64   `json:"depositAmount"`
	RemainingAmount int64   `json:"remainingAmount"`
}

// SessionResponse одна сессия повторяющегося бронирования
type SessionResponse struct {
	Date      string `json:"date"`
	SlotLabel string `json:"slotLabel"`
}

// BookingRecordResponse бронирование, созданное сервисом полей
type BookingRecordResponse struct {
	BookingID       string     `json:"bookingId"`
	ScheduleID      string     `json:"scheduleId"`
	BookingStatus   string     `json:"bookingStatus"`
	PaymentStatus   string     `json:"paymentStatus"`
	QRCode          string     `json:"qrCode,omitempty"`
	QRExpiresAt     *time.Time `json:"qrExpiresAt,omitempty"`
	TotalPrice      int64      `json:"totalPrice"`
	DepositAmount   int64      `json:"depositAmount"`
	RemainingAmount int64      `json:"remainingAmount"`
}

// FromSnapshot конвертирует снимок потока в HTTP ответ
func FromSnapshot(s *flow.Snapshot) *FlowResponse {
	if s == nil {
		return nil
	}

	resp := &FlowResponse{
		FlowID:      s.FlowID,
		Step:        string(s.Step),
		Sessions:    make([]SessionResponse, 0, len(s.Sessions)),
		Booking:     FromBookingRecord(s.Record),
		Locked:      s.IsLocked(),
		LockExpired: s.LockExpired,
	}

	if s.Draft != nil {
		resp.Draft = fromDraft(s.Draft)
		resp.Pricing = fromPricing(s.Draft.Pricing)
	}

	for _, session := range s.Sessions {
		resp.Sessions = append(resp.Sessions, SessionResponse{
			Date:      session.Date.Format(domain.DateFormat),
			SlotLabel: session.SlotLabel,
		})
	}

	if s.Lock != nil {
		expiresAt := s.Lock.ExpiresAt
		resp.LockExpiresAt = &expiresAt
		resp.LockRemainingSeconds = remainingSeconds(s.LockRemaining)
	}

	return resp
}

// FromBookingRecord конвертирует бронирование в HTTP ответ
func FromBookingRecord(r *domain.BookingRecord) *BookingRecordResponse {
	if r == nil {
		return nil
	}

	return &BookingRecordResponse{
		BookingID:       r.BookingID,
		ScheduleID:      r.ScheduleID,
		BookingStatus:   string(r.BookingStatus),
		PaymentStatus:   string(r.PaymentStatus),
		QRCode:          r.QRArtifact,
		QRExpiresAt:     r.QRExpiresAt,
		TotalPrice:      r.TotalPrice,
		DepositAmount:   r.DepositAmount,
		RemainingAmount: r.RemainingAmount,
	}
}

func fromDraft(d *domain.BookingDraft) *DraftResponse {
	weekdays := make([]int, 0, len(d.Recurrence.WeekdaySet))
	for _, wd := range d.Recurrence.WeekdaySet {
		weekdays = append(weekdays, int(wd))
	}

	resp := &DraftResponse{
		FieldID:      d.FieldID,
		SlotID:       d.SlotID,
		SlotLabel:    d.SlotLabel,
		BasePrice:    d.BasePrice,
		HasOpponent:  d.HasOpponent,
		ContactName:  d.Contact.Name,
		ContactPhone: d.Contact.Phone,
		ContactEmail: d.Contact.Email,
		Notes:        d.Contact.Notes,
		IsRecurring:  d.IsRecurring,
		Recurrence: RecurrenceResponse{
			Weekdays:  weekdays,
			WeekCount: d.Recurrence.WeekCount,
		},
		DepositPolicy: DepositPolicyResponse{
			Percent: d.DepositPolicy.Percent,
			Min:     d.DepositPolicy.Min,
			Max:     d.DepositPolicy.Max,
		},
	}

	if !d.Date.IsZero() {
		resp.Date = d.Date.Format(domain.DateFormat)
	}
	if !d.Recurrence.StartDate.IsZero() {
		resp.Recurrence.StartDate = d.Recurrence.StartDate.Format(domain.DateFormat)
	}

	return resp
}

func fromPricing(p domain.PricingBreakdown) *PricingResponse {
	return &PricingResponse{
		SessionCount:    p.SessionCount,
		Subtotal:        p.Subtotal,
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  p.DiscountAmount,
		Total:           p.Total,
		DepositAmount:   p.DepositAmount,
		RemainingAmount: p.RemainingAmount,
	}
}

// remainingSeconds округляет вверх: 0.2с до конца показывается как 1с
func remainingSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
