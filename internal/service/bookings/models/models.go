package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

const (
	// DefaultPageSize размер страницы истории по умолчанию
	DefaultPageSize uint64 = 50
	// MaxPageSize максимальный размер страницы истории
	MaxPageSize uint64 = 200
)

// Request модели

// GetUserBookingsRequest запрос на получение истории бронирований пользователя
type GetUserBookingsRequest struct {
	RequesterID   int64   `json:"-"`
	RequesterRole string  `json:"-"`
	UserID        int64   `json:"userId"`
	Status        *string `json:"status,omitempty"`
	Limit         uint64  `json:"limit,omitempty"`
	Offset        uint64  `json:"offset,omitempty"`
}

// Response модели

// BookingResponse запись истории бронирований
type BookingResponse struct {
	BookingID       string    `json:"bookingId"`
	UserID          int64     `json:"userId"`
	FieldID         string    `json:"fieldId"`
	SlotID          string    `json:"slotId"`
	SlotLabel       string    `json:"slotLabel"`
	BookingDate     string    `json:"bookingDate"` // "2025-10-20"
	IsRecurring     bool      `json:"isRecurring"`
	SessionCount    int       `json:"sessionCount"`
	TotalPrice      int64     `json:"totalPrice"`
	DepositAmount   int64     `json:"depositAmount"`
	RemainingAmount int64     `json:"remainingAmount"`
	BookingStatus   string    `json:"bookingStatus"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainHistory конвертирует domain модель в DTO
func FromDomainHistory(e *domain.HistoryEntry) *BookingResponse {
	if e == nil {
		return nil
	}

	return &BookingResponse{
		BookingID:       e.BookingID,
		UserID:          e.UserID,
		FieldID:         e.FieldID,
		SlotID:          e.SlotID,
		SlotLabel:       e.SlotLabel,
		BookingDate:     e.BookingDate.Format(domain.DateFormat),
		IsRecurring:     e.IsRecurring,
		SessionCount:    e.SessionCount,
		TotalPrice:      e.TotalPrice,
		DepositAmount:   e.DepositAmount,
		RemainingAmount: e.RemainingAmount,
		BookingStatus:   string(e.BookingStatus),
		PaymentStatus:   string(e.PaymentStatus),
		CreatedAt:       e.CreatedAt,
	}
}

// FromDomainHistoryList конвертирует список записей истории
func FromDomainHistoryList(entries []*domain.HistoryEntry) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(entries)),
	}
	for _, e := range entries {
		if dto := FromDomainHistory(e); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в статус бронирования
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch status := domain.BookingStatus(s); status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
