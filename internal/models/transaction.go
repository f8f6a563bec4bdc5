package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the persisted ledger row type.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Bounced    TransactionType = "BOUNCED"
)

// Transaction is the persistence shape of a passbook ledger row.
// running_balance is a derived snapshot column maintained by the recompute.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	BankAccountID   string          `db:"bank_account_id"`
	Type            TransactionType `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Category        string          `db:"category"`
	Description     string          `db:"description"`
	CheckNo         *int64          `db:"check_no"`
	TransactionDate time.Time       `db:"transaction_date"`
	RunningBalance  decimal.Decimal `db:"running_balance"`
	AuditFields
}
