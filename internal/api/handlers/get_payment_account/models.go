package get_payment_account

import "github.com/m04kA/SMC-FieldBookingService/internal/domain"

// BankAccountResponse реквизиты для оплаты депозита
type BankAccountResponse struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(a *domain.BankAccount) *BankAccountResponse {
	return &BankAccountResponse{
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		AccountHolder: a.AccountHolder,
	}
}
