package services

import (
	"context"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
)

// TransactionReaderSvc defines read operations for one-off transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction. Returns apperrors.ErrNotFound for an unknown id.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.AdhocTransaction, error)

	// ListTransactions retrieves one page of transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListTransactionsByDateRange retrieves every transaction dated within [start, end].
	ListTransactionsByDateRange(ctx context.Context, start, end domain.Date) ([]domain.AdhocTransaction, error)
}

// TransactionWriterSvc defines write operations for one-off transactions
type TransactionWriterSvc interface {
	// CreateTransaction records a new income or expense.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.AdhocTransaction, error)

	// UpdateTransaction replaces description, money, date and category.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.AdhocTransaction, error)

	// ChangeTransactionType switches between income and expense.
	ChangeTransactionType(ctx context.Context, transactionID string, req dto.ChangeTransactionTypeRequest, userID string) (*domain.AdhocTransaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
