package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdhocTransaction is a row of the adhoc_transactions table.
type AdhocTransaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"` // Signed by EntryType
	CurrencyCode    string          `json:"currencyCode"`
	TransactionDate time.Time       `json:"transactionDate"` // DATE
	Category        *string         `json:"category"`        // Nullable
	EntryType       string          `json:"entryType"`
	AuditFields
}
