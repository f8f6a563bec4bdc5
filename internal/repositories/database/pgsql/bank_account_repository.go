package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerworks/voucher_disbursement_app/internal/apperrors"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
	"github.com/ledgerworks/voucher_disbursement_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) *PgxBankAccountRepository {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBankAccountRepository implements the facade
var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

const bankAccountColumns = `bank_account_id, company_id, bank_name, account_number, opening_balance, current_balance, created_at, created_by, last_updated_at, last_updated_by`

func scanBankAccount(row pgx.Row) (*models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.BankAccountID,
		&m.CompanyID,
		&m.BankName,
		&m.AccountNumber,
		&m.OpeningBalance,
		&m.CurrentBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveBankAccount inserts a new bank account.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankAccountID,
		m.CompanyID,
		m.BankName,
		m.AccountNumber,
		m.OpeningBalance,
		m.CurrentBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bank account %s for company %s already exists", apperrors.ErrDuplicate, m.AccountNumber, m.CompanyID)
		}
		return fmt.Errorf("failed to save bank account %s: %w", m.BankAccountID, err)
	}
	return nil
}

// FindBankAccountByID retrieves a bank account by its ID.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1;`

	m, err := scanBankAccount(r.Pool.QueryRow(ctx, query, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("bank account with ID %s not found", bankAccountID))
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", bankAccountID, err)
	}
	acc := mapping.ToDomainBankAccount(*m)
	return &acc, nil
}

// ListBankAccountsByCompany retrieves all bank accounts of a company.
func (r *PgxBankAccountRepository) ListBankAccountsByCompany(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE company_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	accounts := make([]domain.BankAccount, 0)
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainBankAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}
	return accounts, nil
}

// FindBankAccountForUpdate selects a bank account and locks its row within a transaction.
func (r *PgxBankAccountRepository) FindBankAccountForUpdate(ctx context.Context, tx pgx.Tx, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1 FOR UPDATE;`

	m, err := scanBankAccount(tx.QueryRow(ctx, query, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("bank account with ID %s not found", bankAccountID))
		}
		return nil, fmt.Errorf("failed to lock bank account %s: %w", bankAccountID, err)
	}
	acc := mapping.ToDomainBankAccount(*m)
	return &acc, nil
}

// SetCurrentBalanceInTx overwrites the authoritative current balance within a transaction.
func (r *PgxBankAccountRepository) SetCurrentBalanceInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, balance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE bank_accounts
		SET current_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1;
	`
	tag, err := tx.Exec(ctx, query, bankAccountID, balance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update balance of bank account %s: %w", bankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("bank account with ID %s not found", bankAccountID))
	}
	return nil
}
