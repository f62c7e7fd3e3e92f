package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
)

// RecurrencePattern is how often a schedule repeats.
type RecurrencePattern string

const (
	Weekly     RecurrencePattern = "WEEKLY"
	BiWeekly   RecurrencePattern = "BIWEEKLY"
	Monthly    RecurrencePattern = "MONTHLY"
	Quarterly  RecurrencePattern = "QUARTERLY"
	SemiAnnual RecurrencePattern = "SEMI_ANNUAL"
	Annual     RecurrencePattern = "ANNUAL"
	Custom     RecurrencePattern = "CUSTOM" // every N days, N >= 1
)

// AllRecurrencePatterns lists the supported patterns in display order.
var AllRecurrencePatterns = []RecurrencePattern{Weekly, BiWeekly, Monthly, Quarterly, SemiAnnual, Annual, Custom}

// IsValid reports whether p is a known pattern.
func (p RecurrencePattern) IsValid() bool {
	switch p {
	case Weekly, BiWeekly, Monthly, Quarterly, SemiAnnual, Annual, Custom:
		return true
	}
	return false
}

// monthInterval is the step in months for calendar-month patterns, 0 otherwise.
func (p RecurrencePattern) monthInterval() int {
	switch p {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case SemiAnnual:
		return 6
	case Annual:
		return 12
	}
	return 0
}

// dayInterval is the step in days for fixed-interval patterns.
func (p RecurrencePattern) dayInterval(customIntervalDays *int) int {
	switch p {
	case Weekly:
		return 7
	case BiWeekly:
		return 14
	case Custom:
		return *customIntervalDays
	}
	return 0
}

// ValidateRecurrence checks the pattern/interval pairing: Custom needs an interval >= 1,
// every other pattern must not carry one.
func ValidateRecurrence(pattern RecurrencePattern, customIntervalDays *int) error {
	if !pattern.IsValid() {
		return fmt.Errorf("%w: unknown pattern %q", apperrors.ErrInvalidRecurrence, pattern)
	}
	if pattern == Custom {
		if customIntervalDays == nil {
			return fmt.Errorf("%w: custom pattern requires an interval in days", apperrors.ErrInvalidRecurrence)
		}
		if *customIntervalDays < 1 {
			return fmt.Errorf("%w: custom interval must be at least 1 day, got %d", apperrors.ErrInvalidRecurrence, *customIntervalDays)
		}
		return nil
	}
	if customIntervalDays != nil {
		return fmt.Errorf("%w: pattern %s does not take a custom interval", apperrors.ErrInvalidRecurrence, pattern)
	}
	return nil
}

// Occurrences expands a recurrence into the ascending dates d with rangeStart <= d <= rangeEnd.
// An empty or inverted range, or one ending before the anchor, yields no dates and no error.
// It holds no state, so overlapping calls always agree on the dates they share.
func Occurrences(anchor Date, pattern RecurrencePattern, customIntervalDays *int, rangeStart, rangeEnd Date) ([]Date, error) {
	if err := ValidateRecurrence(pattern, customIntervalDays); err != nil {
		return nil, err
	}
	if rangeStart.After(rangeEnd) || rangeEnd.Before(anchor) {
		return []Date{}, nil
	}
	if months := pattern.monthInterval(); months > 0 {
		return monthlyOccurrences(anchor, months, rangeStart, rangeEnd), nil
	}
	return fixedOccurrences(anchor, pattern.dayInterval(customIntervalDays), rangeStart, rangeEnd), nil
}

// CountOccurrences returns len(Occurrences(...)) in constant time, without listing the dates.
func CountOccurrences(anchor Date, pattern RecurrencePattern, customIntervalDays *int, rangeStart, rangeEnd Date) (int, error) {
	if err := ValidateRecurrence(pattern, customIntervalDays); err != nil {
		return 0, err
	}
	if rangeStart.After(rangeEnd) || rangeEnd.Before(anchor) {
		return 0, nil
	}
	if months := pattern.monthInterval(); months > 0 {
		return countMonthly(anchor, months, rangeStart, rangeEnd), nil
	}
	return countFixed(anchor, pattern.dayInterval(customIntervalDays), rangeStart, rangeEnd), nil
}

// countFixed counts k >= 0 with anchor + k*interval in [rangeStart, rangeEnd]. rangeEnd is not before anchor.
func countFixed(anchor Date, interval int, rangeStart, rangeEnd Date) int {
	from := max(0, rangeStart.DayNumber()-anchor.DayNumber())
	to := rangeEnd.DayNumber() - anchor.DayNumber()
	first := (from + interval - 1) / interval
	last := to / interval
	return max(0, last-first+1)
}

// countMonthly counts the candidate months between rangeStart and rangeEnd, then drops the
// first or last candidate when its clamped day falls outside the range.
func countMonthly(anchor Date, interval int, rangeStart, rangeEnd Date) int {
	first := 0
	if diff := MonthDiff(rangeStart, anchor); diff > 0 {
		first = (diff + interval - 1) / interval
	}
	last := MonthDiff(rangeEnd, anchor) / interval
	if last < first {
		return 0
	}
	n := last - first + 1
	if monthlyOccurrence(anchor, first*interval).Before(rangeStart) {
		n--
	}
	if monthlyOccurrence(anchor, last*interval).After(rangeEnd) {
		n--
	}
	return max(0, n)
}

func fixedOccurrences(anchor Date, interval int, rangeStart, rangeEnd Date) []Date {
	candidate := anchor
	if rangeStart.After(anchor) {
		skip := (rangeStart.DayNumber() - anchor.DayNumber()) / interval
		candidate = anchor.AddDays(skip * interval)
		if candidate.Before(rangeStart) {
			candidate = candidate.AddDays(interval)
		}
	}

	dates := make([]Date, 0, max(0, (rangeEnd.DayNumber()-candidate.DayNumber())/interval+1))
	for !candidate.After(rangeEnd) {
		dates = append(dates, candidate)
		candidate = candidate.AddDays(interval)
	}
	return dates
}

func monthlyOccurrences(anchor Date, interval int, rangeStart, rangeEnd Date) []Date {
	step := 0
	if diff := MonthDiff(rangeStart, anchor); diff > 0 {
		step = diff / interval
	}

	dates := []Date{}
	for {
		offset := step * interval
		if NewDate(anchor.Year(), anchor.Month()+time.Month(offset), 1).After(rangeEnd) {
			break
		}
		occurrence := monthlyOccurrence(anchor, offset)
		if !occurrence.Before(rangeStart) && !occurrence.After(rangeEnd) {
			dates = append(dates, occurrence)
		}
		step++
	}
	return dates
}

// monthlyOccurrence is the anchor shifted by offset months, its day clamped to the target month.
// Month arithmetic always starts from the anchor's month, never from a previous clamped date.
func monthlyOccurrence(anchor Date, offset int) Date {
	first := NewDate(anchor.Year(), anchor.Month()+time.Month(offset), 1)
	day := min(anchor.Day(), DaysInMonth(first.Year(), first.Month()))
	return NewDate(first.Year(), first.Month(), day)
}
