package open_flow

import (
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	openFlow "github.com/m04kA/SMC-FieldBookingService/internal/usecase/open_flow"
)

// OpenFlowRequest HTTP request model
type OpenFlowRequest struct {
	FieldID       string                `json:"fieldId"`
	SlotID        string                `json:"slotId"`
	SlotLabel     string                `json:"slotLabel"`
	Date          string                `json:"date"` // "2025-10-20"
	BasePrice     int64                 `json:"basePrice"`
	OwnerID       string                `json:"ownerId"`
	BankAccountID string                `json:"bankAccountId,omitempty"`
	DepositPolicy *DepositPolicyRequest `json:"depositPolicy,omitempty"`
}

// DepositPolicyRequest правила депозита; отсутствующий percent означает 30%
type DepositPolicyRequest struct {
	Percent *float64 `json:"percent,omitempty"`
	Min     int64    `json:"min,omitempty"`
	Max     int64    `json:"max,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *OpenFlowRequest) ToUseCaseRequest(userID int64) (*openFlow.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &openFlow.Request{
		UserID:        userID,
		FieldID:       r.FieldID,
		SlotID:        r.SlotID,
		SlotLabel:     r.SlotLabel,
		Date:          date,
		BasePrice:     r.BasePrice,
		OwnerID:       r.OwnerID,
		BankAccountID: r.BankAccountID,
	}

	if r.DepositPolicy != nil {
		req.DepositPolicy = domain.DepositPolicy{
			Percent: r.DepositPolicy.Percent,
			Min:     r.DepositPolicy.Min,
			Max:     r.DepositPolicy.Max,
		}
	}

	return req, nil
}
