package mapping

import (
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		BankAccountID:   d.BankAccountID,
		Type:            models.TransactionType(d.Type),
		Amount:          d.Amount,
		Category:        d.Category,
		Description:     d.Description,
		CheckNo:         d.CheckNo,
		TransactionDate: d.TransactionDate,
		RunningBalance:  d.RunningBalance,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		BankAccountID:   m.BankAccountID,
		Type:            domain.TransactionType(m.Type),
		Amount:          m.Amount,
		Category:        m.Category,
		Description:     m.Description,
		CheckNo:         m.CheckNo,
		TransactionDate: m.TransactionDate,
		RunningBalance:  m.RunningBalance,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
