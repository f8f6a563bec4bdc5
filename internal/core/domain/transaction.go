package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryCheckDisbursement is the ledger category stamped on rows posted by
// check clearing. It is what links a cleared check to its ledger row and what
// shields that row from direct edits and deletes.
const CategoryCheckDisbursement = "CHECK_DISBURSEMENT"

// TransactionType classifies a ledger row's effect on the bank balance.
type TransactionType string

const (
	// Deposit credits the account.
	Deposit TransactionType = "DEPOSIT"
	// Withdrawal debits the account (including cleared checks).
	Withdrawal TransactionType = "WITHDRAWAL"
	// Bounced debits the account for a deposited item returned unpaid.
	Bounced TransactionType = "BOUNCED"
)

// Transaction is one row of a bank account's append-only passbook ledger.
// RunningBalance is a derived snapshot: it is recomputed for this row and
// every later row whenever any row at or before it is inserted, edited or
// removed. Amount is always positive; the type carries the sign.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	BankAccountID   string          `json:"bankAccountID"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"` // Positive value
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	CheckNo         *int64          `json:"checkNo,omitempty"` // Links to a Check when set
	TransactionDate time.Time       `json:"transactionDate"`   // Calendar date, no time zone shifting
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	AuditFields
}
