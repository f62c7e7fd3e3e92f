package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Stamp identifies who made a change and when.
type Stamp struct {
	UserID string
	At     time.Time
}

func newAuditFields(s Stamp) AuditFields {
	return AuditFields{
		CreatedAt:     s.At,
		CreatedBy:     s.UserID,
		LastUpdatedAt: s.At,
		LastUpdatedBy: s.UserID,
	}
}

func (a *AuditFields) touch(s Stamp) {
	a.LastUpdatedAt = s.At
	a.LastUpdatedBy = s.UserID
}

// EntryType tags a schedule or transaction as money coming in or going out.
type EntryType string

const (
	Income  EntryType = "INCOME"
	Expense EntryType = "EXPENSE"
)

func (t EntryType) IsValid() bool {
	return t == Income || t == Expense
}

// Signed applies the sign convention: income is stored positive, expense negative.
// The sign of the input is ignored.
func (t EntryType) Signed(m MoneyValue) MoneyValue {
	if t == Expense {
		return m.Abs().Neg()
	}
	return m.Abs()
}
