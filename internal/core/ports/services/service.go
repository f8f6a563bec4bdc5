package services

// ServiceContainer holds all service facades needed by handlers.
// This makes passing dependencies to the handler registration cleaner.
type ServiceContainer struct {
	BankAccountSvc BankAccountSvcFacade
	CheckbookSvc   CheckbookSvcFacade
	CheckSvc       CheckSvcFacade
	LedgerSvc      LedgerSvcFacade
	VoucherSvc     VoucherSvcFacade
}
