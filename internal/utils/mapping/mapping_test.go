package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/SscSPs/budget_calendar_app/internal/models"
	"github.com/SscSPs/budget_calendar_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var audit = models.AuditFields{
	CreatedAt:     time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	CreatedBy:     "creator",
	LastUpdatedAt: time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
	LastUpdatedBy: "editor",
}

func scheduleRow() models.Schedule {
	return models.Schedule{
		ScheduleID:   "sched-1",
		Name:         "Rent",
		AnchorDate:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Pattern:      "MONTHLY",
		Amount:       decimal.NewFromInt(-1200),
		CurrencyCode: "USD",
		EntryType:    "EXPENSE",
		AuditFields:  audit,
	}
}

func TestScheduleMapping(t *testing.T) {
	s, err := mapping.ToDomainSchedule(scheduleRow())
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", s.Anchor.String())
	assert.Equal(t, domain.Expense, s.Type)
	assert.True(t, s.Amount.Equal(domain.MustMoney("USD", "-1200")))
	assert.Equal(t, "editor", s.LastUpdatedBy)

	back := mapping.ToModelSchedule(s)
	want := scheduleRow()
	assert.True(t, want.Amount.Equal(back.Amount))
	back.Amount, want.Amount = decimal.Zero, decimal.Zero
	assert.Equal(t, want, back)
}

func TestToDomainSchedule_RejectsBrokenRows(t *testing.T) {
	wrongSign := scheduleRow()
	wrongSign.Amount = decimal.NewFromInt(1200)

	badPattern := scheduleRow()
	badPattern.Pattern = "FORTNIGHTLY"

	badCurrency := scheduleRow()
	badCurrency.CurrencyCode = "US"

	for name, row := range map[string]models.Schedule{
		"wrong sign":   wrongSign,
		"bad pattern":  badPattern,
		"bad currency": badCurrency,
	} {
		_, err := mapping.ToDomainSchedule(row)
		assert.ErrorIs(t, err, apperrors.ErrValidation, name)
	}

	_, err := mapping.ToDomainScheduleSlice([]models.Schedule{scheduleRow(), wrongSign})
	assert.Error(t, err)
}

func TestAdhocTransactionMapping(t *testing.T) {
	category := "food"
	row := models.AdhocTransaction{
		TransactionID:   "txn-1",
		Description:     "Groceries",
		Amount:          decimal.RequireFromString("-80.25"),
		CurrencyCode:    "USD",
		TransactionDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Category:        &category,
		EntryType:       "EXPENSE",
		AuditFields:     audit,
	}

	txns, err := mapping.ToDomainAdhocTransactionSlice([]models.AdhocTransaction{row})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "2025-03-10", txns[0].Date.String())
	assert.True(t, txns[0].Money.Equal(domain.MustMoney("USD", "-80.25")))
	back := mapping.ToModelAdhocTransaction(txns[0])
	assert.True(t, row.Amount.Equal(back.Amount))
	assert.Equal(t, row.TransactionDate, back.TransactionDate)
	assert.Equal(t, row.Category, back.Category)
	assert.Equal(t, row.AuditFields, back.AuditFields)

	wrongSign := row
	wrongSign.Amount = decimal.RequireFromString("80.25")
	unknownType := row
	unknownType.EntryType = "TRANSFER"
	blank := row
	blank.Description = "  "
	for name, bad := range map[string]models.AdhocTransaction{
		"wrong sign":        wrongSign,
		"unknown type":      unknownType,
		"blank description": blank,
	} {
		_, err := mapping.ToDomainAdhocTransaction(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, name)
	}

	_, err = mapping.ToDomainAdhocTransactionSlice([]models.AdhocTransaction{row, wrongSign})
	assert.Error(t, err)
}
