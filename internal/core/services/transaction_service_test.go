package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/core/services"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txnRepo      *MockTransactionRepository
	currencyRepo *MockCurrencyRepository
	service      portssvc.TransactionSvcFacade
	ctx          context.Context
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.currencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.currencyRepo)
	suite.ctx = context.Background()
}

func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.txnRepo.AssertExpectations(suite.T())
	suite.currencyRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) storedExpense() *domain.AdhocTransaction {
	date, _ := domain.ParseDate("2025-03-10")
	txn, err := domain.NewExpenseTransaction("txn-1", "Groceries", domain.MustMoney("USD", "80"), date, strPtr("food"), domain.Stamp{UserID: "owner"})
	suite.Require().NoError(err)
	return txn
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeIsStoredPositive() {
	req := dto.CreateTransactionRequest{
		Type:         "INCOME",
		Description:  "Bonus",
		Amount:       decPtr(decimal.NewFromInt(-300)),
		CurrencyCode: "USD",
		Date:         "2025-03-01",
	}
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(usdCurrency(), nil).Once()
	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.AdhocTransaction) bool {
		return t.Money.Equal(domain.MustMoney("USD", "300")) && t.Type == domain.Income && t.CreatedBy == "user-1"
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal("2025-03-01", txn.Date.String())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Rejections() {
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "EUR").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type: "EXPENSE", Description: "Train", Amount: decPtr(decimal.NewFromInt(9)), CurrencyCode: "EUR", Date: "2025-03-01",
	}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type: "EXPENSE", Description: "Train", Amount: decPtr(decimal.NewFromInt(9)), CurrencyCode: "USD", Date: "03/01/2025",
	}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type: "EXPENSE", Description: "Train", CurrencyCode: "USD", Date: "2025-03-01",
	}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_LookupFailureIsNotValidation() {
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(nil, context.DeadlineExceeded).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type: "INCOME", Description: "Gift", Amount: decPtr(decimal.NewFromInt(1)), CurrencyCode: "USD", Date: "2025-03-01",
	}, "user-1")

	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.NotErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_KeepsType() {
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "txn-1").Return(suite.storedExpense(), nil).Once()
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(usdCurrency(), nil).Once()
	suite.txnRepo.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(t domain.AdhocTransaction) bool {
		return t.Money.Equal(domain.MustMoney("USD", "-95.40")) && t.Category == nil
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(suite.ctx, "txn-1", dto.UpdateTransactionRequest{
		Description:  "Groceries and snacks",
		Amount:       decPtr(decimal.RequireFromString("95.4")),
		CurrencyCode: "USD",
		Date:         "2025-03-11",
	}, "editor")

	suite.Require().NoError(err)
	suite.Equal(domain.Expense, txn.Type)
	suite.Equal("editor", txn.LastUpdatedBy)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(suite.ctx, "nope", dto.UpdateTransactionRequest{}, "editor")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestChangeTransactionType_FlipsSign() {
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "txn-1").Return(suite.storedExpense(), nil).Once()
	suite.txnRepo.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(t domain.AdhocTransaction) bool {
		return t.Type == domain.Income && t.Money.Equal(domain.MustMoney("USD", "80"))
	})).Return(nil).Once()

	txn, err := suite.service.ChangeTransactionType(suite.ctx, "txn-1", dto.ChangeTransactionTypeRequest{Type: "INCOME"}, "editor")

	suite.Require().NoError(err)
	suite.Equal("Groceries", txn.Description)
}

func (suite *TransactionServiceTestSuite) TestChangeTransactionType_UpdateError() {
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "txn-1").Return(suite.storedExpense(), nil).Once()
	suite.txnRepo.On("UpdateTransaction", suite.ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.ChangeTransactionType(suite.ctx, "txn-1", dto.ChangeTransactionTypeRequest{Type: "INCOME"}, "editor")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByDateRange() {
	start, _ := domain.ParseDate("2025-03-01")
	end, _ := domain.ParseDate("2025-03-31")
	suite.txnRepo.On("FindTransactionsByDateRange", suite.ctx, start, end).Return(nil, nil).Once()

	txns, err := suite.service.ListTransactionsByDateRange(suite.ctx, start, end)
	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)

	// inverted ranges never reach the store
	txns, err = suite.service.ListTransactionsByDateRange(suite.ctx, end, start)
	suite.Require().NoError(err)
	suite.Empty(txns)
}

func (suite *TransactionServiceTestSuite) TestListTransactions() {
	token := strPtr("page-2")
	suite.txnRepo.On("ListTransactions", suite.ctx, 10, token).
		Return([]domain.AdhocTransaction{*suite.storedExpense()}, (*string)(nil), nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 10, NextToken: token})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 1)
	suite.Equal("food", *resp.Transactions[0].Category)
	suite.Nil(resp.NextToken)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	suite.txnRepo.On("DeleteTransaction", suite.ctx, "txn-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteTransaction(suite.ctx, "txn-1", "user-1"))
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
