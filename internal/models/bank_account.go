package models

import "github.com/shopspring/decimal"

// BankAccount is the persistence shape of a bank account row.
type BankAccount struct {
	BankAccountID  string          `db:"bank_account_id"`
	CompanyID      string          `db:"company_id"`
	BankName       string          `db:"bank_name"`
	AccountNumber  string          `db:"account_number"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	AuditFields
}
