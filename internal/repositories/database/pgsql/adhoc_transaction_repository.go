package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_calendar_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_calendar_app/internal/models"
	"github.com/SscSPs/budget_calendar_app/internal/utils/mapping"
	"github.com/SscSPs/budget_calendar_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, description, amount, currency_code, transaction_date, category, entry_type,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.AdhocTransaction, error) {
	var m models.AdhocTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.TransactionDate,
		&m.Category,
		&m.EntryType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts a new one-off transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.AdhocTransaction) error {
	m := mapping.ToModelAdhocTransaction(txn)
	query := `INSERT INTO adhoc_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.TransactionDate,
		m.Category,
		m.EntryType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "transaction", m.TransactionID)
	}
	return nil
}

// UpdateTransaction overwrites every mutable column of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.AdhocTransaction) error {
	m := mapping.ToModelAdhocTransaction(txn)
	query := `
		UPDATE adhoc_transactions SET
			description = $2,
			amount = $3,
			currency_code = $4,
			transaction_date = $5,
			category = $6,
			entry_type = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE transaction_id = $1;`

	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.TransactionDate,
		m.Category,
		m.EntryType,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "transaction", m.TransactionID)
	}
	return requireOneRow(tag, "transaction", m.TransactionID)
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM adhoc_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return requireOneRow(tag, "transaction", transactionID)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.AdhocTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM adhoc_transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn, err := mapping.ToDomainAdhocTransaction(m)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// FindTransactionsByDateRange retrieves every transaction dated within [start, end].
func (r *PgxTransactionRepository) FindTransactionsByDateRange(ctx context.Context, start, end domain.Date) ([]domain.AdhocTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM adhoc_transactions
		WHERE transaction_date BETWEEN $1 AND $2
		ORDER BY transaction_date, created_at, transaction_id;`

	rows, err := r.Pool.Query(ctx, query, start.Time(), end.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions between %s and %s: %w", start, end, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AdhocTransaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainAdhocTransactionSlice(ms)
}

// ListTransactions retrieves a page of transactions, newest date first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.AdhocTransaction, *string, error) {
	limit = pageLimit(limit)
	fetchLimit := limit + 1

	// Ordering must be stable: date, then creation time, then id as the final tie-breaker.
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, lastID, decodeErr := pagination.DecodeDatedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}
		query := `SELECT ` + transactionColumns + ` FROM adhoc_transactions
			WHERE (transaction_date, created_at, transaction_id) < ($1, $2, $3)
			` + orderByClause + ` LIMIT $4;`
		rows, err = r.Pool.Query(ctx, query, lastDate, lastCreatedAt, lastID, fetchLimit)
	} else {
		query := `SELECT ` + transactionColumns + ` FROM adhoc_transactions ` + orderByClause + ` LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	page, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AdhocTransaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	var nextTokenVal *string
	if len(page) > limit {
		page = page[:limit]
		last := page[limit-1]
		token := pagination.EncodeDatedToken(last.TransactionDate, last.CreatedAt, last.TransactionID)
		nextTokenVal = &token
	}

	txns, err := mapping.ToDomainAdhocTransactionSlice(page)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nextTokenVal, nil
}
