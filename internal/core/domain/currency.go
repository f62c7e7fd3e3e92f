package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}

// Money builds a MoneyValue in this currency.
func (c Currency) Money(amount decimal.Decimal) (MoneyValue, error) {
	return NewMoneyValue(c.CurrencyCode, amount)
}
