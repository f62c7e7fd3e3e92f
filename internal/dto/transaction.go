package dto

import (
	"time"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a one-off income or expense.
type CreateTransactionRequest struct {
	Type         string           `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Description  string           `json:"description" binding:"required,max=255"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string           `json:"currencyCode" binding:"required,uppercase,len=3"`
	Date         string           `json:"date" binding:"required,datetime=2006-01-02"`
	Category     *string          `json:"category" binding:"omitempty,max=100"`
}

// UpdateTransactionRequest replaces the editable fields of a transaction. The type is changed separately.
type UpdateTransactionRequest struct {
	Description  string           `json:"description" binding:"required,max=255"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string           `json:"currencyCode" binding:"required,uppercase,len=3"`
	Date         string           `json:"date" binding:"required,datetime=2006-01-02"`
	Category     *string          `json:"category" binding:"omitempty,max=100"`
}

// ChangeTransactionTypeRequest switches a transaction between income and expense.
type ChangeTransactionTypeRequest struct {
	Type string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// ListTransactionsParams defines the query parameters for listing transactions.
// When Start and End are both given the date range is returned unpaged.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=1000"`
	NextToken *string `form:"nextToken"`
	Start     string  `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End       string  `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Date          domain.Date     `json:"date"`
	Category      *string         `json:"category,omitempty"`
	Type          string          `json:"type"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.AdhocTransaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.AdhocTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Description:   t.Description,
		Amount:        t.Money.Amount(),
		CurrencyCode:  t.Money.CurrencyCode(),
		Date:          t.Date,
		Category:      t.Category,
		Type:          string(t.Type),
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.AdhocTransaction.
func ToTransactionResponses(txns []domain.AdhocTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
