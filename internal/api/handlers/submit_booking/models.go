package submit_booking

import (
	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-FieldBookingService/internal/usecase/submit_booking"
)

// SubmitBookingResponse поток на шаге оплаты и созданное бронирование
type SubmitBookingResponse struct {
	Flow    *handlers.FlowResponse          `json:"flow"`
	Booking *handlers.BookingRecordResponse `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Flow:    handlers.FromSnapshot(&resp.Flow),
		Booking: handlers.FromBookingRecord(&resp.Record),
	}
}
