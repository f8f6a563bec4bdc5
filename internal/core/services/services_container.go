package services

import (
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.BankAccountSvc = NewBankAccountService(repos.BankAccountRepo, repos.CheckRepo)
	container.CheckbookSvc = NewCheckbookService(repos.CheckbookRepo, repos.BankAccountRepo)
	container.CheckSvc = NewCheckService(repos.CheckRepo)
	container.LedgerSvc = NewLedgerService(repos.TransactionRepo, repos.BankAccountRepo)
	container.VoucherSvc = NewVoucherService(repos.VoucherRepo, repos.CheckRepo, repos.BankAccountRepo, repos.AuditRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)
	_ portssvc.CheckbookSvcFacade   = (*checkbookService)(nil)
	_ portssvc.CheckSvcFacade       = (*checkService)(nil)
	_ portssvc.LedgerSvcFacade      = (*ledgerService)(nil)
	_ portssvc.VoucherSvcFacade     = (*voucherService)(nil)
)
