package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
)

// Schedule is a recurring income or expense.
// Amount always carries the sign of Type; every constructor and mutator re-applies it.
type Schedule struct {
	ScheduleID         string            `json:"scheduleID"`
	Name               string            `json:"name"` // required for expenses
	Anchor             Date              `json:"anchor"`
	Pattern            RecurrencePattern `json:"pattern"`
	CustomIntervalDays *int              `json:"customIntervalDays,omitempty"` // only for CUSTOM
	Amount             MoneyValue        `json:"amount"`
	Type               EntryType         `json:"type"`
	AuditFields
}

// NewIncomeSchedule creates an income schedule. The name is optional.
func NewIncomeSchedule(id string, anchor Date, amount MoneyValue, pattern RecurrencePattern, customIntervalDays *int, name string, stamp Stamp) (*Schedule, error) {
	return newSchedule(id, Income, name, anchor, amount, pattern, customIntervalDays, stamp)
}

// NewExpenseSchedule creates an expense schedule. The name must not be blank.
func NewExpenseSchedule(id string, name string, anchor Date, amount MoneyValue, pattern RecurrencePattern, customIntervalDays *int, stamp Stamp) (*Schedule, error) {
	return newSchedule(id, Expense, name, anchor, amount, pattern, customIntervalDays, stamp)
}

// NewSchedule dispatches to the typed constructor for entryType.
func NewSchedule(id string, entryType EntryType, name string, anchor Date, amount MoneyValue, pattern RecurrencePattern, customIntervalDays *int, stamp Stamp) (*Schedule, error) {
	switch entryType {
	case Income:
		return NewIncomeSchedule(id, anchor, amount, pattern, customIntervalDays, name, stamp)
	case Expense:
		return NewExpenseSchedule(id, name, anchor, amount, pattern, customIntervalDays, stamp)
	}
	return nil, fmt.Errorf("%w: unknown schedule type %q", apperrors.ErrValidation, entryType)
}

func newSchedule(id string, entryType EntryType, name string, anchor Date, amount MoneyValue, pattern RecurrencePattern, customIntervalDays *int, stamp Stamp) (*Schedule, error) {
	name = strings.TrimSpace(name)
	if err := validateScheduleName(entryType, name); err != nil {
		return nil, err
	}
	if anchor.IsZero() {
		return nil, fmt.Errorf("%w: anchor date is required", apperrors.ErrValidation)
	}
	if err := ValidateRecurrence(pattern, customIntervalDays); err != nil {
		return nil, err
	}
	return &Schedule{
		ScheduleID:         id,
		Name:               name,
		Anchor:             anchor,
		Pattern:            pattern,
		CustomIntervalDays: copyInterval(customIntervalDays),
		Amount:             entryType.Signed(amount),
		Type:               entryType,
		AuditFields:        newAuditFields(stamp),
	}, nil
}

func validateScheduleName(entryType EntryType, name string) error {
	if entryType == Expense && name == "" {
		return fmt.Errorf("%w: expense schedule name is required", apperrors.ErrValidation)
	}
	return nil
}

func copyInterval(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// UpdateAmount replaces the amount, re-applying the sign convention.
func (s *Schedule) UpdateAmount(amount MoneyValue, stamp Stamp) {
	s.Amount = s.Type.Signed(amount)
	s.touch(stamp)
}

// UpdateAnchor moves the phase of the schedule.
func (s *Schedule) UpdateAnchor(anchor Date, stamp Stamp) error {
	if anchor.IsZero() {
		return fmt.Errorf("%w: anchor date is required", apperrors.ErrValidation)
	}
	s.Anchor = anchor
	s.touch(stamp)
	return nil
}

// UpdateRecurrence changes the pattern. Switching away from CUSTOM clears the stored interval.
func (s *Schedule) UpdateRecurrence(pattern RecurrencePattern, customIntervalDays *int, stamp Stamp) error {
	if pattern != Custom {
		customIntervalDays = nil
	}
	if err := ValidateRecurrence(pattern, customIntervalDays); err != nil {
		return err
	}
	s.Pattern = pattern
	s.CustomIntervalDays = copyInterval(customIntervalDays)
	s.touch(stamp)
	return nil
}

// UpdateName renames the schedule. Expenses cannot be given a blank name.
func (s *Schedule) UpdateName(name string, stamp Stamp) error {
	name = strings.TrimSpace(name)
	if err := validateScheduleName(s.Type, name); err != nil {
		return err
	}
	s.Name = name
	s.touch(stamp)
	return nil
}

// Occurrences lists the schedule's dates within [start, end].
func (s *Schedule) Occurrences(start, end Date) ([]Date, error) {
	return Occurrences(s.Anchor, s.Pattern, s.CustomIntervalDays, start, end)
}

// CountOccurrences counts the schedule's dates within [start, end] without listing them.
func (s *Schedule) CountOccurrences(start, end Date) (int, error) {
	return CountOccurrences(s.Anchor, s.Pattern, s.CustomIntervalDays, start, end)
}

// Validate checks the invariants of a schedule loaded from storage.
func (s *Schedule) Validate() error {
	if !s.Type.IsValid() {
		return fmt.Errorf("%w: unknown schedule type %q", apperrors.ErrValidation, s.Type)
	}
	if err := validateScheduleName(s.Type, s.Name); err != nil {
		return err
	}
	if err := ValidateRecurrence(s.Pattern, s.CustomIntervalDays); err != nil {
		return err
	}
	if !s.Type.Signed(s.Amount).Equal(s.Amount) {
		return fmt.Errorf("%w: amount %s does not match schedule type %s", apperrors.ErrValidation, s.Amount, s.Type)
	}
	return nil
}
