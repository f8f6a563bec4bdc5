package mapping

import (
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID:  d.BankAccountID,
		CompanyID:      d.CompanyID,
		BankName:       d.BankName,
		AccountNumber:  d.AccountNumber,
		OpeningBalance: d.OpeningBalance,
		CurrentBalance: d.CurrentBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID:  m.BankAccountID,
		CompanyID:      m.CompanyID,
		BankName:       m.BankName,
		AccountNumber:  m.AccountNumber,
		OpeningBalance: m.OpeningBalance,
		CurrentBalance: m.CurrentBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
