package accounting

import (
	"fmt"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxMonthsAfterEpoch bounds how far past the epoch a month may be queried.
const MaxMonthsAfterEpoch = 100 * 12

// RunningTotalCalculator turns schedules and one-off transactions into monthly balances.
// It performs no I/O; callers supply every schedule and every transaction in FetchWindow.
type RunningTotalCalculator struct {
	// Epoch is the first month that contributes to carryover.
	Epoch domain.YearMonth
	// CurrencyCode is the single working currency; anything else is rejected.
	CurrencyCode string
}

// NewRunningTotalCalculator validates the working currency.
func NewRunningTotalCalculator(epoch domain.YearMonth, currencyCode string) (RunningTotalCalculator, error) {
	zero, err := domain.ZeroMoney(currencyCode)
	if err != nil {
		return RunningTotalCalculator{}, fmt.Errorf("invalid working currency: %w", err)
	}
	return RunningTotalCalculator{Epoch: epoch, CurrencyCode: zero.CurrencyCode()}, nil
}

// CheckMonth rejects months more than MaxMonthsAfterEpoch past the epoch.
func (c RunningTotalCalculator) CheckMonth(month domain.YearMonth) error {
	if month.Index()-c.Epoch.Index() > MaxMonthsAfterEpoch {
		return fmt.Errorf("%w: month %s is more than %d months after %s", apperrors.ErrValidation, month, MaxMonthsAfterEpoch, c.Epoch)
	}
	return nil
}

// FetchWindow is the transaction date range needed to compute totals for month:
// from the start of the epoch (or of month, if earlier) through the end of month.
func (c RunningTotalCalculator) FetchWindow(month domain.YearMonth) (domain.Date, domain.Date) {
	from := c.Epoch
	if month.Before(from) {
		from = month
	}
	return from.FirstDay(), month.LastDay()
}

// Carryover is the net of every occurrence and transaction strictly before the first day of month,
// counted from the epoch. Months at or before the epoch carry nothing over.
func (c RunningTotalCalculator) Carryover(month domain.YearMonth, schedules []domain.Schedule, txns []domain.AdhocTransaction) (domain.MoneyValue, error) {
	zero := c.zero()
	if err := c.CheckMonth(month); err != nil {
		return zero, err
	}
	if !c.Epoch.Before(month) {
		return zero, nil
	}
	ledger, err := c.buildLedger(c.Epoch, month.Prev(), schedules, txns)
	if err != nil {
		return zero, err
	}
	return ledger.sum(c.Epoch, month.Prev())
}

// NetTotal sums every schedule occurrence and transaction that lands in month.
func (c RunningTotalCalculator) NetTotal(month domain.YearMonth, schedules []domain.Schedule, txns []domain.AdhocTransaction) (domain.MoneyValue, error) {
	ledger, err := c.buildLedger(month, month, schedules, txns)
	if err != nil {
		return c.zero(), err
	}
	return ledger.sum(month, month)
}

// EndOfMonthTotal is Carryover(month) + NetTotal(month), without walking the days.
func (c RunningTotalCalculator) EndOfMonthTotal(month domain.YearMonth, schedules []domain.Schedule, txns []domain.AdhocTransaction) (domain.MoneyValue, error) {
	from := month
	if c.Epoch.Before(month) {
		from = c.Epoch
	}
	ledger, err := c.buildLedger(from, month, schedules, txns)
	if err != nil {
		return c.zero(), err
	}
	net, err := ledger.sum(month, month)
	if err != nil {
		return c.zero(), err
	}
	if !c.Epoch.Before(month) {
		return net, nil
	}
	carry, err := ledger.sum(c.Epoch, month.Prev())
	if err != nil {
		return c.zero(), err
	}
	return carry.Add(net)
}

// DailyDeltas buckets the month's occurrences and transactions by day.
// Days without activity are absent from the map.
func (c RunningTotalCalculator) DailyDeltas(month domain.YearMonth, schedules []domain.Schedule, txns []domain.AdhocTransaction) (map[domain.Date]domain.MoneyValue, error) {
	start, end := month.FirstDay(), month.LastDay()
	deltas := make(map[domain.Date]domain.MoneyValue)
	add := func(day domain.Date, amount domain.MoneyValue) error {
		current, ok := deltas[day]
		if !ok {
			current = c.zero()
		}
		next, err := current.Add(amount)
		if err != nil {
			return err
		}
		deltas[day] = next
		return nil
	}

	for i := range schedules {
		s := &schedules[i]
		if err := c.checkCurrency(s.Amount, "schedule", s.ScheduleID); err != nil {
			return nil, err
		}
		dates, err := s.Occurrences(start, end)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", s.ScheduleID, err)
		}
		for _, d := range dates {
			if err := add(d, s.Amount); err != nil {
				return nil, err
			}
		}
	}
	for i := range txns {
		t := &txns[i]
		if err := c.checkCurrency(t.Money, "transaction", t.TransactionID); err != nil {
			return nil, err
		}
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		if err := add(t.Date, t.Money); err != nil {
			return nil, err
		}
	}
	return deltas, nil
}

// MonthlyRunningTotals walks month day by day, starting from its carryover.
func (c RunningTotalCalculator) MonthlyRunningTotals(month domain.YearMonth, schedules []domain.Schedule, txns []domain.AdhocTransaction) (*domain.MonthlyRunningTotals, error) {
	if err := c.CheckMonth(month); err != nil {
		return nil, err
	}
	carryover, err := c.Carryover(month, schedules, txns)
	if err != nil {
		return nil, err
	}
	deltas, err := c.DailyDeltas(month, schedules, txns)
	if err != nil {
		return nil, err
	}

	result := &domain.MonthlyRunningTotals{
		Month:        month,
		CurrencyCode: c.CurrencyCode,
		Carryover:    carryover.Amount(),
		Entries:      make([]domain.RunningTotalEntry, 0, domain.DaysInMonth(month.Year, month.Month)),
	}
	balance := carryover.Amount()
	for day := month.FirstDay(); !day.After(month.LastDay()); day = day.AddDays(1) {
		daily := decimal.Zero
		if delta, ok := deltas[day]; ok {
			daily = delta.Amount()
		}
		balance = balance.Add(daily)
		result.Entries = append(result.Entries, domain.RunningTotalEntry{
			Date:         day,
			DailyAmount:  daily,
			RunningTotal: balance,
		})
	}
	return result, nil
}

func (c RunningTotalCalculator) zero() domain.MoneyValue {
	z, _ := domain.ZeroMoney(c.CurrencyCode)
	return z
}

func (c RunningTotalCalculator) checkCurrency(m domain.MoneyValue, kind, id string) error {
	if m.CurrencyCode() == c.CurrencyCode {
		return nil
	}
	_, err := c.zero().Add(m)
	return fmt.Errorf("%s %s: %w", kind, id, err)
}

// monthlyLedger holds the net total of each month in [from, to], keyed by YearMonth.Index().
type monthlyLedger struct {
	zero   domain.MoneyValue
	totals map[int]domain.MoneyValue
}

func (c RunningTotalCalculator) buildLedger(from, to domain.YearMonth, schedules []domain.Schedule, txns []domain.AdhocTransaction) (*monthlyLedger, error) {
	if err := c.CheckMonth(to); err != nil {
		return nil, err
	}
	ledger := &monthlyLedger{zero: c.zero(), totals: make(map[int]domain.MoneyValue)}
	if to.Before(from) {
		return ledger, nil
	}
	start, end := from.FirstDay(), to.LastDay()

	for i := range schedules {
		s := &schedules[i]
		if err := c.checkCurrency(s.Amount, "schedule", s.ScheduleID); err != nil {
			return nil, err
		}
		// occurrences are counted per month, never listed
		first := from
		if anchorMonth := domain.YearMonthOf(s.Anchor); first.Before(anchorMonth) {
			first = anchorMonth
		}
		for ym := first; !to.Before(ym); ym = ym.Next() {
			n, err := s.CountOccurrences(ym.FirstDay(), ym.LastDay())
			if err != nil {
				return nil, fmt.Errorf("schedule %s: %w", s.ScheduleID, err)
			}
			if n == 0 {
				continue
			}
			if err := ledger.add(ym.Index(), s.Amount.Times(n)); err != nil {
				return nil, err
			}
		}
	}
	for i := range txns {
		t := &txns[i]
		if err := c.checkCurrency(t.Money, "transaction", t.TransactionID); err != nil {
			return nil, err
		}
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		if err := ledger.add(domain.YearMonthOf(t.Date).Index(), t.Money); err != nil {
			return nil, err
		}
	}
	return ledger, nil
}

func (l *monthlyLedger) add(idx int, amount domain.MoneyValue) error {
	current, ok := l.totals[idx]
	if !ok {
		current = l.zero
	}
	next, err := current.Add(amount)
	if err != nil {
		return err
	}
	l.totals[idx] = next
	return nil
}

// sum adds the months from..to inclusive, stepping forward one month at a time.
func (l *monthlyLedger) sum(from, to domain.YearMonth) (domain.MoneyValue, error) {
	total := l.zero
	for ym := from; !to.Before(ym); ym = ym.Next() {
		month, ok := l.totals[ym.Index()]
		if !ok {
			continue
		}
		var err error
		if total, err = total.Add(month); err != nil {
			return l.zero, err
		}
	}
	return total, nil
}
