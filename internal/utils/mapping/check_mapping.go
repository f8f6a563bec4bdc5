package mapping

import (
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
)

// ToModelCheck converts a domain Check to a model Check
func ToModelCheck(d domain.Check) models.Check {
	return models.Check{
		CheckID:       d.CheckID,
		BankAccountID: d.BankAccountID,
		CheckbookID:   d.CheckbookID,
		VoucherID:     d.VoucherID,
		CheckNumber:   d.CheckNumber,
		Payee:         d.Payee,
		Amount:        d.Amount,
		DateIssued:    d.DateIssued,
		CheckDate:     d.CheckDate,
		Status:        models.CheckStatus(d.Status),
		ReceivedBy:    d.ReceivedBy,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheck converts a model Check to a domain Check
func ToDomainCheck(m models.Check) domain.Check {
	return domain.Check{
		CheckID:       m.CheckID,
		BankAccountID: m.BankAccountID,
		CheckbookID:   m.CheckbookID,
		VoucherID:     m.VoucherID,
		CheckNumber:   m.CheckNumber,
		Payee:         m.Payee,
		Amount:        m.Amount,
		DateIssued:    m.DateIssued,
		CheckDate:     m.CheckDate,
		Status:        domain.CheckStatus(m.Status),
		ReceivedBy:    m.ReceivedBy,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCheckSlice converts a slice of model Checks to domain Checks
func ToDomainCheckSlice(ms []models.Check) []domain.Check {
	ds := make([]domain.Check, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCheck(m)
	}
	return ds
}
