package dto

import (
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a manual ledger
// entry (deposit, withdrawal, or bounced deposit) against a bank account.
type RecordTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=DEPOSIT WITHDRAWAL BOUNCED"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	CheckNo     *int64          `json:"checkNo"`
}

// UpdateTransactionRequest defines a retroactive amount/date edit. Both fields
// are required; the caller resubmits the current value for the one it is not
// changing.
type UpdateTransactionRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a passbook ledger row.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	BankAccountID   string          `json:"bankAccountID"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	CheckNo         *int64          `json:"checkNo,omitempty"`
	TransactionDate string          `json:"transactionDate"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// ListTransactionsParams holds query parameters for listing passbook rows.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a page of passbook rows plus the account's
// authoritative balance after all committed effects.
type ListTransactionsResponse struct {
	Transactions   []TransactionResponse `json:"transactions"`
	NextToken      *string               `json:"nextToken,omitempty"`
	CurrentBalance decimal.Decimal       `json:"currentBalance"`
}

// ToTransactionResponse converts a domain.Transaction to a DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		BankAccountID:   txn.BankAccountID,
		Type:            string(txn.Type),
		Amount:          txn.Amount,
		Category:        txn.Category,
		Description:     txn.Description,
		CheckNo:         txn.CheckNo,
		TransactionDate: FormatDate(txn.TransactionDate),
		RunningBalance:  txn.RunningBalance,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
