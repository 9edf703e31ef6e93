package open_flow

import (
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return ErrUserRequired
	}

	if req.FieldID == "" {
		return fmt.Errorf("%w: fieldId is required", ErrInvalidInput)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.BasePrice < 0 || req.BasePrice > domain.MaxBasePrice {
		return fmt.Errorf("%w: basePrice must be in 0..%d", ErrInvalidInput, domain.MaxBasePrice)
	}

	if req.DepositPolicy.Min < 0 || req.DepositPolicy.Max < 0 {
		return fmt.Errorf("%w: deposit bounds must not be negative", ErrInvalidInput)
	}

	return nil
}
