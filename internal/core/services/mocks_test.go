package services_test

import (
	"context"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ScheduleRepository ---
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) ListSchedules(ctx context.Context, limit int, nextToken *string) ([]domain.Schedule, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var schedules []domain.Schedule
	if args.Get(0) != nil {
		schedules = args.Get(0).([]domain.Schedule)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return schedules, token, args.Error(2)
}

func (m *MockScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.AdhocTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdhocTransaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByDateRange(ctx context.Context, start, end domain.Date) ([]domain.AdhocTransaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdhocTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.AdhocTransaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var txns []domain.AdhocTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.AdhocTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.AdhocTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.AdhocTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func usdCurrency() *domain.Currency {
	return &domain.Currency{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"}
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
