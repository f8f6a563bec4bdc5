package mapping

import (
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
)

// ToModelCheckbook converts a domain Checkbook to a model Checkbook
func ToModelCheckbook(d domain.Checkbook) models.Checkbook {
	return models.Checkbook{
		CheckbookID:   d.CheckbookID,
		BankAccountID: d.BankAccountID,
		SeriesStart:   d.SeriesStart,
		SeriesEnd:     d.SeriesEnd,
		NextCheckNo:   d.NextCheckNo,
		Status:        models.CheckbookStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheckbook converts a model Checkbook to a domain Checkbook
func ToDomainCheckbook(m models.Checkbook) domain.Checkbook {
	return domain.Checkbook{
		CheckbookID:   m.CheckbookID,
		BankAccountID: m.BankAccountID,
		SeriesStart:   m.SeriesStart,
		SeriesEnd:     m.SeriesEnd,
		NextCheckNo:   m.NextCheckNo,
		Status:        domain.CheckbookStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCheckbookSlice converts a slice of model Checkbooks to domain Checkbooks
func ToDomainCheckbookSlice(ms []models.Checkbook) []domain.Checkbook {
	ds := make([]domain.Checkbook, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCheckbook(m)
	}
	return ds
}
