package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxBankAccountRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)
	checkbookRepo := newPgxCheckbookRepository(dbPool)
	txnRepo := newPgxTransactionRepository(dbPool, accountRepo)
	checkRepo := newPgxCheckRepository(dbPool, accountRepo, txnRepo, auditRepo)
	voucherRepo := newPgxVoucherRepository(dbPool, checkbookRepo, checkRepo, auditRepo)

	return portsrepo.RepositoryProvider{
		BankAccountRepo: accountRepo,
		CheckbookRepo:   checkbookRepo,
		CheckRepo:       checkRepo,
		TransactionRepo: txnRepo,
		VoucherRepo:     voucherRepo,
		AuditRepo:       auditRepo,
	}
}
