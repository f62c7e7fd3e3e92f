package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Schedule is a row of the schedules table.
type Schedule struct {
	ScheduleID         string          `json:"scheduleID"` // Primary Key (UUID)
	Name               string          `json:"name"`
	AnchorDate         time.Time       `json:"anchorDate"` // DATE
	Pattern            string          `json:"pattern"`
	CustomIntervalDays *int            `json:"customIntervalDays"` // Nullable, only for CUSTOM
	Amount             decimal.Decimal `json:"amount"`             // Signed by EntryType
	CurrencyCode       string          `json:"currencyCode"`
	EntryType          string          `json:"entryType"` // INCOME or EXPENSE
	AuditFields
}
