package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyRunningTotals_Lookups(t *testing.T) {
	totals := &domain.MonthlyRunningTotals{
		Month:     domain.YearMonth{Year: 2025, Month: time.February},
		Carryover: decimal.NewFromInt(100),
		Entries: []domain.RunningTotalEntry{
			{Date: d("2025-02-01"), DailyAmount: decimal.NewFromInt(5), RunningTotal: decimal.NewFromInt(105)},
			{Date: d("2025-02-02"), DailyAmount: decimal.NewFromInt(-10), RunningTotal: decimal.NewFromInt(95)},
		},
	}

	byDate := totals.ByDate()
	assert.Len(t, byDate, 2)
	assert.True(t, byDate[d("2025-02-02")].RunningTotal.Equal(decimal.NewFromInt(95)))
	assert.True(t, totals.EndOfMonth().Equal(decimal.NewFromInt(95)))

	empty := &domain.MonthlyRunningTotals{Carryover: decimal.NewFromInt(7)}
	assert.True(t, empty.EndOfMonth().Equal(decimal.NewFromInt(7)))
}
