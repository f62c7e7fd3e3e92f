package repositories

import (
	"context"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
)

// TransactionReader defines read operations for one-off transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction. Returns apperrors.ErrNotFound if it does not exist.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.AdhocTransaction, error)

	// FindTransactionsByDateRange retrieves every transaction dated within [start, end], ordered by date.
	FindTransactionsByDateRange(ctx context.Context, start, end domain.Date) ([]domain.AdhocTransaction, error)

	// ListTransactions retrieves a page of transactions, newest date first, using token-based pagination.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.AdhocTransaction, *string, error)
}

// TransactionWriter defines write operations for one-off transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.AdhocTransaction) error

	// UpdateTransaction overwrites an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.AdhocTransaction) error

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound if it does not exist.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
