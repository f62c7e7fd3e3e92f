package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
)

// AdhocTransaction is a one-off dated income or expense.
// Money follows the same sign convention as Schedule.
type AdhocTransaction struct {
	TransactionID string     `json:"transactionID"`
	Description   string     `json:"description"`
	Money         MoneyValue `json:"money"`
	Date          Date       `json:"date"`
	Category      *string    `json:"category,omitempty"`
	Type          EntryType  `json:"type"`
	AuditFields
}

// NewIncomeTransaction records money coming in on date.
func NewIncomeTransaction(id string, description string, money MoneyValue, date Date, category *string, stamp Stamp) (*AdhocTransaction, error) {
	return newAdhocTransaction(id, Income, description, money, date, category, stamp)
}

// NewExpenseTransaction records money going out on date.
func NewExpenseTransaction(id string, description string, money MoneyValue, date Date, category *string, stamp Stamp) (*AdhocTransaction, error) {
	return newAdhocTransaction(id, Expense, description, money, date, category, stamp)
}

// NewAdhocTransaction dispatches on entryType.
func NewAdhocTransaction(id string, entryType EntryType, description string, money MoneyValue, date Date, category *string, stamp Stamp) (*AdhocTransaction, error) {
	switch entryType {
	case Income:
		return NewIncomeTransaction(id, description, money, date, category, stamp)
	case Expense:
		return NewExpenseTransaction(id, description, money, date, category, stamp)
	}
	return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, entryType)
}

func newAdhocTransaction(id string, entryType EntryType, description string, money MoneyValue, date Date, category *string, stamp Stamp) (*AdhocTransaction, error) {
	description, err := cleanDescription(description)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}
	return &AdhocTransaction{
		TransactionID: id,
		Description:   description,
		Money:         entryType.Signed(money),
		Date:          date,
		Category:      cleanCategory(category),
		Type:          entryType,
		AuditFields:   newAuditFields(stamp),
	}, nil
}

func cleanDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: transaction description is required", apperrors.ErrValidation)
	}
	return description, nil
}

func cleanCategory(category *string) *string {
	if category == nil {
		return nil
	}
	c := strings.TrimSpace(*category)
	if c == "" {
		return nil
	}
	return &c
}

// Update replaces the editable fields. The type is kept and its sign re-applied to money.
func (t *AdhocTransaction) Update(description string, money MoneyValue, date Date, category *string, stamp Stamp) error {
	description, err := cleanDescription(description)
	if err != nil {
		return err
	}
	if date.IsZero() {
		return fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}
	t.Description = description
	t.Money = t.Type.Signed(money)
	t.Date = date
	t.Category = cleanCategory(category)
	t.touch(stamp)
	return nil
}

// ChangeType switches between income and expense and renormalizes the sign.
func (t *AdhocTransaction) ChangeType(entryType EntryType, stamp Stamp) error {
	if !entryType.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, entryType)
	}
	t.Type = entryType
	t.Money = entryType.Signed(t.Money)
	t.touch(stamp)
	return nil
}

// Validate checks the invariants of a transaction loaded from storage.
func (t *AdhocTransaction) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: transaction description is required", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}
	if !t.Type.Signed(t.Money).Equal(t.Money) {
		return fmt.Errorf("%w: amount %s does not match transaction type %s", apperrors.ErrValidation, t.Money, t.Type)
	}
	return nil
}
