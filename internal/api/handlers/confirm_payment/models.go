package confirm_payment

import (
	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-FieldBookingService/internal/usecase/confirm_payment"
)

// ConfirmPaymentResponse поток на шаге подтверждения
type ConfirmPaymentResponse struct {
	Flow    *handlers.FlowResponse          `json:"flow"`
	Booking *handlers.BookingRecordResponse `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		Flow:    handlers.FromSnapshot(&resp.Flow),
		Booking: handlers.FromBookingRecord(&resp.Record),
	}
}
