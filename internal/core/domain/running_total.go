package domain

import "github.com/shopspring/decimal"

// RunningTotalEntry is one day of a month's running balance.
type RunningTotalEntry struct {
	Date         Date            `json:"date"`
	DailyAmount  decimal.Decimal `json:"dailyAmount"`
	RunningTotal decimal.Decimal `json:"runningTotal"`
}

// MonthlyRunningTotals is the day-by-day balance of a month, seeded with the carryover of all earlier months.
type MonthlyRunningTotals struct {
	Month        YearMonth           `json:"month"`
	CurrencyCode string              `json:"currencyCode"`
	Carryover    decimal.Decimal     `json:"carryover"`
	Entries      []RunningTotalEntry `json:"entries"` // one per day, ascending
}

// ByDate indexes the entries by day.
func (m *MonthlyRunningTotals) ByDate() map[Date]RunningTotalEntry {
	out := make(map[Date]RunningTotalEntry, len(m.Entries))
	for _, e := range m.Entries {
		out[e.Date] = e
	}
	return out
}

// EndOfMonth is the running total after the last day, or the carryover for an empty month.
func (m *MonthlyRunningTotals) EndOfMonth() decimal.Decimal {
	if len(m.Entries) == 0 {
		return m.Carryover
	}
	return m.Entries[len(m.Entries)-1].RunningTotal
}
