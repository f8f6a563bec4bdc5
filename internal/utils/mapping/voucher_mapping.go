package mapping

import (
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:     d.VoucherID,
		VoucherNo:     d.VoucherNo,
		CompanyID:     d.CompanyID,
		Status:        models.VoucherStatus(d.Status),
		Amount:        d.Amount,
		Payee:         d.Payee,
		Category:      d.Category,
		PaymentType:   string(d.PaymentType),
		BankAccountID: d.BankAccountID,
		CheckNo:       d.CheckNo,
		CheckDate:     d.CheckDate,
		VoidReason:    d.VoidReason,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:     m.VoucherID,
		VoucherNo:     m.VoucherNo,
		CompanyID:     m.CompanyID,
		Status:        domain.VoucherStatus(m.Status),
		Amount:        m.Amount,
		Payee:         m.Payee,
		Category:      m.Category,
		PaymentType:   domain.PaymentType(m.PaymentType),
		BankAccountID: m.BankAccountID,
		CheckNo:       m.CheckNo,
		CheckDate:     m.CheckDate,
		VoidReason:    m.VoidReason,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVoucherSlice converts a slice of model Vouchers to domain Vouchers
func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	ds := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}
