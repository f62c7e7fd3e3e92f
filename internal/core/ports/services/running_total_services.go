package services

import (
	"context"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
)

// RunningTotalService reports the account balance over time
type RunningTotalService interface {
	// GetRunningTotalsForMonth returns the daily amount and running balance of every day in the month.
	// An out-of-range year or month is an apperrors.ErrValidation.
	GetRunningTotalsForMonth(ctx context.Context, year int, month int) (*domain.MonthlyRunningTotals, error)

	// GetEndOfMonthTotal returns the balance after the last day of the month.
	GetEndOfMonthTotal(ctx context.Context, year int, month int) (domain.MoneyValue, error)
}
