package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements portssvc.TransactionSvcFacade
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	currencyRepo    portsrepo.CurrencyReader
}

// NewTransactionService creates a new one-off transaction service
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		currencyRepo:    currencyRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.AdhocTransaction, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	money, err := resolveMoney(ctx, s.currencyRepo, req.CurrencyCode, amount)
	if err != nil {
		return nil, err
	}

	txn, err := domain.NewAdhocTransaction(uuid.NewString(), domain.EntryType(req.Type), req.Description, money, date, req.Category, s.stamp(userID))
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("date", txn.Date.String()))
	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.AdhocTransaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *transactionService) ListTransactionsByDateRange(ctx context.Context, start, end domain.Date) ([]domain.AdhocTransaction, error) {
	if start.After(end) {
		return []domain.AdhocTransaction{}, nil
	}
	txns, err := s.transactionRepo.FindTransactionsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions between %s and %s: %w", start, end, err)
	}
	if txns == nil {
		return []domain.AdhocTransaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.AdhocTransaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s for update: %w", transactionID, err)
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	money, err := resolveMoney(ctx, s.currencyRepo, req.CurrencyCode, amount)
	if err != nil {
		return nil, err
	}
	if err := txn.Update(req.Description, money, date, req.Category, s.stamp(userID)); err != nil {
		return nil, err
	}
	return s.save(ctx, txn)
}

func (s *transactionService) ChangeTransactionType(ctx context.Context, transactionID string, req dto.ChangeTransactionTypeRequest, userID string) (*domain.AdhocTransaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s for type change: %w", transactionID, err)
	}
	if err := txn.ChangeType(domain.EntryType(req.Type), s.stamp(userID)); err != nil {
		return nil, err
	}
	return s.save(ctx, txn)
}

func (s *transactionService) save(ctx context.Context, txn *domain.AdhocTransaction) (*domain.AdhocTransaction, error) {
	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", txn.TransactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID), slog.String("user_id", userID))
	return nil
}
