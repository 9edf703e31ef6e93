package cancel_payment

import "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"

// CancelPaymentRequest HTTP request model; без confirmed=true отмена не выполняется
type CancelPaymentRequest struct {
	Confirmed bool `json:"confirmed"`
}

// CancelPaymentResponse поток на шаге details и отмененное бронирование
type CancelPaymentResponse struct {
	Flow      *handlers.FlowResponse          `json:"flow"`
	Cancelled *handlers.BookingRecordResponse `json:"cancelledBooking,omitempty"`
}
