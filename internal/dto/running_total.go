package dto

import (
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailyTotalResponse is one day of a running-total report.
type DailyTotalResponse struct {
	DailyAmount  decimal.Decimal `json:"dailyAmount"`
	RunningTotal decimal.Decimal `json:"runningTotal"`
}

// RunningTotalsResponse is a month of running totals keyed by YYYY-MM-DD.
type RunningTotalsResponse struct {
	Month        string                        `json:"month"`
	CurrencyCode string                        `json:"currencyCode"`
	Carryover    decimal.Decimal               `json:"carryover"`
	EndOfMonth   decimal.Decimal               `json:"endOfMonth"`
	Days         map[string]DailyTotalResponse `json:"days"`
}

// EndOfMonthTotalResponse is the balance after the last day of a month.
type EndOfMonthTotalResponse struct {
	Month        string          `json:"month"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
}

// ToRunningTotalsResponse converts domain running totals to the response DTO.
func ToRunningTotalsResponse(totals *domain.MonthlyRunningTotals) RunningTotalsResponse {
	days := make(map[string]DailyTotalResponse, len(totals.Entries))
	for _, e := range totals.Entries {
		days[e.Date.String()] = DailyTotalResponse{
			DailyAmount:  e.DailyAmount,
			RunningTotal: e.RunningTotal,
		}
	}
	return RunningTotalsResponse{
		Month:        totals.Month.String(),
		CurrencyCode: totals.CurrencyCode,
		Carryover:    totals.Carryover,
		EndOfMonth:   totals.EndOfMonth(),
		Days:         days,
	}
}

// ToEndOfMonthTotalResponse converts an end-of-month balance to the response DTO.
func ToEndOfMonthTotalResponse(month domain.YearMonth, total domain.MoneyValue) EndOfMonthTotalResponse {
	return EndOfMonthTotalResponse{
		Month:        month.String(),
		CurrencyCode: total.CurrencyCode(),
		Amount:       total.Amount(),
	}
}
