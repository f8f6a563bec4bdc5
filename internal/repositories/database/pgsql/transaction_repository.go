package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerworks/voucher_disbursement_app/internal/apperrors"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
	"github.com/ledgerworks/voucher_disbursement_app/internal/utils/accounting"
	"github.com/ledgerworks/voucher_disbursement_app/internal/utils/mapping"
	"github.com/ledgerworks/voucher_disbursement_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo *PgxBankAccountRepository
}

// newPgxTransactionRepository creates a new repository for passbook ledger data.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo *PgxBankAccountRepository) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements the facade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, bank_account_id, type, amount, category, description, check_no, transaction_date, running_balance, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.BankAccountID,
		&m.Type,
		&m.Amount,
		&m.Category,
		&m.Description,
		&m.CheckNo,
		&m.TransactionDate,
		&m.RunningBalance,
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

// insertInTx inserts a ledger row within an existing transaction. The running
// balance is written as zero; the recompute that follows in the same
// transaction sets the real value.
func (r *PgxTransactionRepository) insertInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.BankAccountID,
		m.Type,
		m.Amount,
		m.Category,
		m.Description,
		m.CheckNo,
		m.TransactionDate,
		m.RunningBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// recomputeFrom recalculates running balances for every ledger row of the
// account dated on or after fromDate and writes the resulting balance back to
// the bank account. The caller must already hold the account row lock. The
// chain base is the running balance of the last row before fromDate, or the
// opening balance when the edit reaches the start of the ledger.
func (r *PgxTransactionRepository) recomputeFrom(ctx context.Context, tx pgx.Tx, account *domain.BankAccount, fromDate time.Time, userID string, now time.Time) (decimal.Decimal, error) {
	base := account.OpeningBalance
	baseQuery := `
		SELECT running_balance FROM transactions
		WHERE bank_account_id = $1 AND transaction_date < $2
		ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC
		LIMIT 1;
	`
	var prior decimal.Decimal
	err := tx.QueryRow(ctx, baseQuery, account.BankAccountID, fromDate).Scan(&prior)
	if err == nil {
		base = prior
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("failed to read recompute base for bank account %s: %w", account.BankAccountID, err)
	}

	tailQuery := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE bank_account_id = $1 AND transaction_date >= $2
		ORDER BY transaction_date, created_at, transaction_id;
	`
	rows, err := tx.Query(ctx, tailQuery, account.BankAccountID, fromDate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read recompute tail for bank account %s: %w", account.BankAccountID, err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, *m)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	rows.Close()

	txns := mapping.ToDomainTransactionSlice(modelTxns)
	final, err := accounting.RecomputeRunningBalances(base, txns)
	if err != nil {
		return decimal.Zero, err
	}

	if len(txns) > 0 {
		batch := &pgx.Batch{}
		updateQuery := `
			UPDATE transactions
			SET running_balance = $2, last_updated_at = $3, last_updated_by = $4
			WHERE transaction_id = $1;
		`
		for i := range txns {
			batch.Queue(updateQuery, txns[i].TransactionID, txns[i].RunningBalance, now, userID)
		}
		results := tx.SendBatch(ctx, batch)
		for range txns {
			if _, err := results.Exec(); err != nil {
				results.Close() //nolint:errcheck
				return decimal.Zero, fmt.Errorf("failed to write recomputed balances for bank account %s: %w", account.BankAccountID, err)
			}
		}
		if err := results.Close(); err != nil {
			return decimal.Zero, fmt.Errorf("failed to close recompute batch: %w", err)
		}
	}

	if err := r.accountRepo.SetCurrentBalanceInTx(ctx, tx, account.BankAccountID, final, userID, now); err != nil {
		return decimal.Zero, err
	}
	return final, nil
}

// RecordTransaction inserts a ledger row and recomputes the chain from its
// date forward, all under the account row lock.
func (r *PgxTransactionRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	account, err := r.accountRepo.FindBankAccountForUpdate(ctx, tx, txn.BankAccountID)
	if err != nil {
		return nil, err
	}
	if err := r.insertInTx(ctx, tx, txn); err != nil {
		return nil, err
	}
	if _, err := r.recomputeFrom(ctx, tx, account, txn.TransactionDate, txn.CreatedBy, txn.CreatedAt); err != nil {
		return nil, err
	}

	saved, err := r.findInTx(ctx, tx, txn.TransactionID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateTransactionAmountAndDate applies a retroactive edit and recomputes
// from the earlier of the old and new dates forward.
func (r *PgxTransactionRepository) UpdateTransactionAmountAndDate(ctx context.Context, transactionID string, amount decimal.Decimal, transactionDate time.Time, userID string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	existing, err := r.findInTx(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	account, err := r.accountRepo.FindBankAccountForUpdate(ctx, tx, existing.BankAccountID)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE transactions
		SET amount = $2, transaction_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1;
	`
	if _, err := tx.Exec(ctx, query, transactionID, amount, transactionDate, now, userID); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	fromDate := existing.TransactionDate
	if transactionDate.Before(fromDate) {
		fromDate = transactionDate
	}
	if _, err := r.recomputeFrom(ctx, tx, account, fromDate, userID, now); err != nil {
		return nil, err
	}

	updated, err := r.findInTx(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction removes a ledger row and recomputes from its date forward.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	existing, err := r.findInTx(ctx, tx, transactionID)
	if err != nil {
		return err
	}
	account, err := r.accountRepo.FindBankAccountForUpdate(ctx, tx, existing.BankAccountID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if _, err := r.recomputeFrom(ctx, tx, account, existing.TransactionDate, userID, now); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) findInTx(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction with ID %s not found", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// FindTransactionByID retrieves a ledger row by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction with ID %s not found", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// ListTransactionsByBankAccount retrieves a page of ledger rows in canonical
// passbook order using token pagination, plus the account's current balance.
func (r *PgxTransactionRepository) ListTransactionsByBankAccount(ctx context.Context, bankAccountID string, limit int, nextToken *string) ([]domain.Transaction, *string, decimal.Decimal, error) {
	var currentBalance decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT current_balance FROM bank_accounts WHERE bank_account_id = $1;`, bankAccountID).Scan(&currentBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf("bank account with ID %s not found", bankAccountID))
		}
		return nil, nil, decimal.Zero, fmt.Errorf("failed to read balance of bank account %s: %w", bankAccountID, err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE bank_account_id = $1`
	args := []interface{}{bankAccountID}
	if nextToken != nil && *nextToken != "" {
		afterDate, afterCreated, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, decimal.Zero, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (transaction_date, created_at, transaction_id) > ($2, $3, $4)`
		args = append(args, afterDate, afterCreated, afterID)
	}
	query += fmt.Sprintf(` ORDER BY transaction_date, created_at, transaction_id LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, decimal.Zero, fmt.Errorf("failed to list transactions for bank account %s: %w", bankAccountID, err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0, limit+1)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, decimal.Zero, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, decimal.Zero, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt, last.TransactionID)
		newToken = &token
	}
	return mapping.ToDomainTransactionSlice(modelTxns), newToken, currentBalance, nil
}
