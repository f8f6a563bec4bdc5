package dto

import (
	"time"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	CompanyID      string          `json:"companyID" binding:"required"`
	BankName       string          `json:"bankName" binding:"required"`
	AccountNumber  string          `json:"accountNumber" binding:"required"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// BankAccountResponse defines the data returned for a bank account. The
// unclaimed balance is derived on read from outstanding checks.
type BankAccountResponse struct {
	BankAccountID    string          `json:"bankAccountID"`
	CompanyID        string          `json:"companyID"`
	BankName         string          `json:"bankName"`
	AccountNumber    string          `json:"accountNumber"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	UnclaimedBalance decimal.Decimal `json:"unclaimedBalance"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToBankAccountResponse converts a domain.BankAccount plus its derived
// unclaimed balance to a BankAccountResponse DTO.
func ToBankAccountResponse(acc *domain.BankAccount, unclaimed decimal.Decimal) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID:    acc.BankAccountID,
		CompanyID:        acc.CompanyID,
		BankName:         acc.BankName,
		AccountNumber:    acc.AccountNumber,
		OpeningBalance:   acc.OpeningBalance,
		CurrentBalance:   acc.CurrentBalance,
		UnclaimedBalance: unclaimed,
		CreatedAt:        acc.CreatedAt,
		CreatedBy:        acc.CreatedBy,
	}
}
