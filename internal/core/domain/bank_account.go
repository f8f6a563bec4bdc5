package domain

import (
	"github.com/shopspring/decimal"
)

// BankAccount represents a bank account owned by a company. CurrentBalance is
// the authoritative running total, mutated only by committed ledger effects
// under a row lock. UnclaimedBalance is derived on read (sum of ISSUED/CLAIMED
// checks) and never persisted.
type BankAccount struct {
	BankAccountID  string          `json:"bankAccountID"` // Primary Key (UUID)
	CompanyID      string          `json:"companyID"`     // Supplied by the external company CRUD
	BankName       string          `json:"bankName"`
	AccountNumber  string          `json:"accountNumber"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Balance before the first ledger row
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AuditFields
}
