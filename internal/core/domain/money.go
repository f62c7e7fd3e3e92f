package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every MoneyValue is rounded to.
const MoneyScale = 2

// MoneyValue is an immutable amount in a single currency.
// Amounts are rounded to two decimal places, half away from zero.
type MoneyValue struct {
	currencyCode string
	amount       decimal.Decimal
}

// NewMoneyValue validates the currency code and rounds the amount.
func NewMoneyValue(currencyCode string, amount decimal.Decimal) (MoneyValue, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if !isCurrencyCode(code) {
		return MoneyValue{}, fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, currencyCode)
	}
	return MoneyValue{currencyCode: code, amount: amount.Round(MoneyScale)}, nil
}

// MustMoney is NewMoneyValue for literals known to be valid. It panics otherwise.
func MustMoney(currencyCode string, amount string) MoneyValue {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	m, err := NewMoneyValue(currencyCode, d)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currencyCode string) (MoneyValue, error) {
	return NewMoneyValue(currencyCode, decimal.Zero)
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (m MoneyValue) CurrencyCode() string    { return m.currencyCode }
func (m MoneyValue) Amount() decimal.Decimal { return m.amount }
func (m MoneyValue) IsZero() bool            { return m.amount.IsZero() }
func (m MoneyValue) IsNegative() bool        { return m.amount.IsNegative() }

func (m MoneyValue) Abs() MoneyValue {
	return MoneyValue{currencyCode: m.currencyCode, amount: m.amount.Abs()}
}

func (m MoneyValue) Neg() MoneyValue {
	return MoneyValue{currencyCode: m.currencyCode, amount: m.amount.Neg()}
}

// Times multiplies the amount by a whole count, e.g. a number of occurrences.
func (m MoneyValue) Times(n int) MoneyValue {
	return MoneyValue{currencyCode: m.currencyCode, amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(MoneyScale)}
}

// Add returns m+o. Both values must share a currency.
func (m MoneyValue) Add(o MoneyValue) (MoneyValue, error) {
	if err := m.sameCurrency(o); err != nil {
		return MoneyValue{}, err
	}
	return MoneyValue{currencyCode: m.currencyCode, amount: m.amount.Add(o.amount).Round(MoneyScale)}, nil
}

// Sub returns m-o. Both values must share a currency.
func (m MoneyValue) Sub(o MoneyValue) (MoneyValue, error) {
	if err := m.sameCurrency(o); err != nil {
		return MoneyValue{}, err
	}
	return MoneyValue{currencyCode: m.currencyCode, amount: m.amount.Sub(o.amount).Round(MoneyScale)}, nil
}

func (m MoneyValue) sameCurrency(o MoneyValue) error {
	if m.currencyCode != o.currencyCode {
		return fmt.Errorf("%w: cannot combine %s with %s", apperrors.ErrCurrencyMismatch, m.currencyCode, o.currencyCode)
	}
	return nil
}

// Equal compares currency and amount.
func (m MoneyValue) Equal(o MoneyValue) bool {
	return m.currencyCode == o.currencyCode && m.amount.Equal(o.amount)
}

func (m MoneyValue) String() string {
	return m.amount.StringFixed(MoneyScale) + " " + m.currencyCode
}

type moneyJSON struct {
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
}

func (m MoneyValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{CurrencyCode: m.currencyCode, Amount: m.amount})
}

func (m *MoneyValue) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewMoneyValue(raw.CurrencyCode, raw.Amount)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
