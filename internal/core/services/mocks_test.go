package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BankAccountRepository ---
type MockBankAccountRepository struct {
	mock.Mock
}

var _ portsrepo.BankAccountRepositoryFacade = (*MockBankAccountRepository)(nil)

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccountsByCompany(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindBankAccountForUpdate(ctx context.Context, tx pgx.Tx, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, tx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) SetCurrentBalanceInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, balance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, bankAccountID, balance, userID, now)
	return args.Error(0)
}

// --- Mock CheckbookRepository ---
type MockCheckbookRepository struct {
	mock.Mock
}

var _ portsrepo.CheckbookRepositoryFacade = (*MockCheckbookRepository)(nil)

func (m *MockCheckbookRepository) FindCheckbookByID(ctx context.Context, checkbookID string) (*domain.Checkbook, error) {
	args := m.Called(ctx, checkbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkbook), args.Error(1)
}

func (m *MockCheckbookRepository) FindActiveCheckbook(ctx context.Context, bankAccountID string) (*domain.Checkbook, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkbook), args.Error(1)
}

func (m *MockCheckbookRepository) ListCheckbooksByBankAccount(ctx context.Context, bankAccountID string) ([]domain.Checkbook, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkbook), args.Error(1)
}

func (m *MockCheckbookRepository) HasOverlappingSeries(ctx context.Context, bankAccountID string, seriesStart, seriesEnd int64) (bool, error) {
	args := m.Called(ctx, bankAccountID, seriesStart, seriesEnd)
	return args.Bool(0), args.Error(1)
}

func (m *MockCheckbookRepository) SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error {
	args := m.Called(ctx, checkbook)
	return args.Error(0)
}

func (m *MockCheckbookRepository) CloseCheckbook(ctx context.Context, checkbookID string, userID string, now time.Time) error {
	args := m.Called(ctx, checkbookID, userID, now)
	return args.Error(0)
}

func (m *MockCheckbookRepository) NextCheckNumber(ctx context.Context, bankAccountID string, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, bankAccountID, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckbookRepository) NextCheckNumberInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, userID string, now time.Time) (string, int64, error) {
	args := m.Called(ctx, tx, bankAccountID, userID, now)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

// --- Mock CheckRepository ---
type MockCheckRepository struct {
	mock.Mock
}

var _ portsrepo.CheckRepositoryFacade = (*MockCheckRepository)(nil)

func (m *MockCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error) {
	args := m.Called(ctx, checkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Check), args.Error(1)
}

func (m *MockCheckRepository) FindCheckByVoucherID(ctx context.Context, voucherID string) (*domain.Check, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Check), args.Error(1)
}

func (m *MockCheckRepository) ListChecksByBankAccount(ctx context.Context, bankAccountID string) ([]domain.Check, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Check), args.Error(1)
}

func (m *MockCheckRepository) SumOutstanding(ctx context.Context, bankAccountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, bankAccountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCheckRepository) SaveCheckInTx(ctx context.Context, tx pgx.Tx, check domain.Check) error {
	args := m.Called(ctx, tx, check)
	return args.Error(0)
}

func (m *MockCheckRepository) ClaimCheck(ctx context.Context, checkID string, receivedBy string, entry domain.AuditEntry, userID string, now time.Time) error {
	args := m.Called(ctx, checkID, receivedBy, entry, userID, now)
	return args.Error(0)
}

func (m *MockCheckRepository) ClearCheck(ctx context.Context, check domain.Check, ledgerTxn domain.Transaction, entry domain.AuditEntry) error {
	args := m.Called(ctx, check, ledgerTxn, entry)
	return args.Error(0)
}

func (m *MockCheckRepository) BounceCheck(ctx context.Context, check domain.Check, entry domain.AuditEntry, userID string, now time.Time) error {
	args := m.Called(ctx, check, entry, userID, now)
	return args.Error(0)
}

func (m *MockCheckRepository) VoidCheckInTx(ctx context.Context, tx pgx.Tx, checkID string, userID string, now time.Time) error {
	args := m.Called(ctx, tx, checkID, userID, now)
	return args.Error(0)
}

func (m *MockCheckRepository) UpdateIssueDate(ctx context.Context, check domain.Check, newDate time.Time, userID string, now time.Time) error {
	args := m.Called(ctx, check, newDate, userID, now)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByBankAccount(ctx context.Context, bankAccountID string, limit int, nextToken *string) ([]domain.Transaction, *string, decimal.Decimal, error) {
	args := m.Called(ctx, bankAccountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, decimal.Zero, args.Error(3)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Get(2).(decimal.Decimal), args.Error(3)
}

func (m *MockTransactionRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionAmountAndDate(ctx context.Context, transactionID string, amount decimal.Decimal, transactionDate time.Time, userID string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, amount, transactionDate, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, userID, now)
	return args.Error(0)
}

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Voucher, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) (*domain.Voucher, error) {
	args := m.Called(ctx, voucher)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) SubmitVoucher(ctx context.Context, voucherID string, bankAccountID *string, checkDate *time.Time, entry domain.AuditEntry, userID string, now time.Time) error {
	args := m.Called(ctx, voucherID, bankAccountID, checkDate, entry, userID, now)
	return args.Error(0)
}

func (m *MockVoucherRepository) ApproveVoucher(ctx context.Context, voucher domain.Voucher, checkTemplate domain.Check, entry domain.AuditEntry) (*domain.Check, error) {
	args := m.Called(ctx, voucher, checkTemplate, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Check), args.Error(1)
}

func (m *MockVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, from, to domain.VoucherStatus, voidReason string, entry domain.AuditEntry, userID string, now time.Time) error {
	args := m.Called(ctx, voucherID, from, to, voidReason, entry, userID, now)
	return args.Error(0)
}

func (m *MockVoucherRepository) VoidVoucherAndCheck(ctx context.Context, voucherID string, checkID string, voucherEntry, checkEntry domain.AuditEntry, userID string, now time.Time) error {
	args := m.Called(ctx, voucherID, checkID, voucherEntry, checkEntry, userID, now)
	return args.Error(0)
}

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveAuditEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditEntries(ctx context.Context, entityType domain.AuditEntityType, entityID string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}
