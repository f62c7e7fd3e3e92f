package mapping

import (
	"fmt"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/SscSPs/budget_calendar_app/internal/models"
)

// ToModelSchedule converts a domain Schedule to a model Schedule
func ToModelSchedule(d domain.Schedule) models.Schedule {
	return models.Schedule{
		ScheduleID:         d.ScheduleID,
		Name:               d.Name,
		AnchorDate:         d.Anchor.Time(),
		Pattern:            string(d.Pattern),
		CustomIntervalDays: d.CustomIntervalDays,
		Amount:             d.Amount.Amount(),
		CurrencyCode:       d.Amount.CurrencyCode(),
		EntryType:          string(d.Type),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSchedule converts a model Schedule to a domain Schedule.
// Rows that break the schedule invariants are reported rather than repaired.
func ToDomainSchedule(m models.Schedule) (domain.Schedule, error) {
	amount, err := domain.NewMoneyValue(m.CurrencyCode, m.Amount)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("schedule %s: %w", m.ScheduleID, err)
	}
	s := domain.Schedule{
		ScheduleID:         m.ScheduleID,
		Name:               m.Name,
		Anchor:             domain.DateOf(m.AnchorDate),
		Pattern:            domain.RecurrencePattern(m.Pattern),
		CustomIntervalDays: m.CustomIntervalDays,
		Amount:             amount,
		Type:               domain.EntryType(m.EntryType),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
	if err := s.Validate(); err != nil {
		return domain.Schedule{}, fmt.Errorf("schedule %s: %w", m.ScheduleID, err)
	}
	return s, nil
}

// ToDomainScheduleSlice converts a slice of model Schedules
func ToDomainScheduleSlice(ms []models.Schedule) ([]domain.Schedule, error) {
	ds := make([]domain.Schedule, len(ms))
	for i, m := range ms {
		s, err := ToDomainSchedule(m)
		if err != nil {
			return nil, err
		}
		ds[i] = s
	}
	return ds, nil
}
