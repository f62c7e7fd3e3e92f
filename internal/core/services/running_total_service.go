package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// DefaultSchedulePageSize is how many schedules are requested per page while draining the store.
const DefaultSchedulePageSize = 1000

// runningTotalService implements the RunningTotalService interface
type runningTotalService struct {
	BaseService
	scheduleRepo     portsrepo.ScheduleReader
	transactionRepo  portsrepo.TransactionReader
	calculator       accounting.RunningTotalCalculator
	schedulePageSize int
}

// RunningTotalServiceOption is a functional option for configuring the running-total service
type RunningTotalServiceOption func(*runningTotalService)

// WithSchedulePageSize sets the page size used to list every schedule.
func WithSchedulePageSize(size int) RunningTotalServiceOption {
	return func(s *runningTotalService) {
		if size > 0 {
			s.schedulePageSize = size
		}
	}
}

// NewRunningTotalService creates a new running-total service with the provided options
func NewRunningTotalService(
	scheduleRepo portsrepo.ScheduleReader,
	transactionRepo portsrepo.TransactionReader,
	calculator accounting.RunningTotalCalculator,
	options ...RunningTotalServiceOption,
) portssvc.RunningTotalService {
	svc := &runningTotalService{
		scheduleRepo:     scheduleRepo,
		transactionRepo:  transactionRepo,
		calculator:       calculator,
		schedulePageSize: DefaultSchedulePageSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RunningTotalService = (*runningTotalService)(nil)

// GetRunningTotalsForMonth returns every day of the month with its net amount and running balance.
func (s *runningTotalService) GetRunningTotalsForMonth(ctx context.Context, year int, month int) (*domain.MonthlyRunningTotals, error) {
	ym, err := domain.NewYearMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.calculator.CheckMonth(ym); err != nil {
		return nil, err
	}
	schedules, txns, err := s.fetch(ctx, ym)
	if err != nil {
		return nil, err
	}

	totals, err := s.calculator.MonthlyRunningTotals(ym, schedules, txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute running totals", slog.String("month", ym.String()))
		return nil, fmt.Errorf("failed to compute running totals for %s: %w", ym, err)
	}

	s.LogInfo(ctx, "Running totals computed",
		slog.String("month", ym.String()),
		slog.Int("schedule_count", len(schedules)),
		slog.Int("transaction_count", len(txns)),
		slog.String("carryover", totals.Carryover.String()))
	return totals, nil
}

// GetEndOfMonthTotal returns carryover plus the month's net total.
func (s *runningTotalService) GetEndOfMonthTotal(ctx context.Context, year int, month int) (domain.MoneyValue, error) {
	ym, err := domain.NewYearMonth(year, month)
	if err != nil {
		return domain.MoneyValue{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.calculator.CheckMonth(ym); err != nil {
		return domain.MoneyValue{}, err
	}
	schedules, txns, err := s.fetch(ctx, ym)
	if err != nil {
		return domain.MoneyValue{}, err
	}

	total, err := s.calculator.EndOfMonthTotal(ym, schedules, txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute end of month total", slog.String("month", ym.String()))
		return domain.MoneyValue{}, fmt.Errorf("failed to compute end of month total for %s: %w", ym, err)
	}
	return total, nil
}

// fetch loads every schedule and every transaction the calculator needs for month.
// The two reads run concurrently; if either fails the other is canceled and nothing is returned.
func (s *runningTotalService) fetch(ctx context.Context, month domain.YearMonth) ([]domain.Schedule, []domain.AdhocTransaction, error) {
	var (
		schedules []domain.Schedule
		txns      []domain.AdhocTransaction
	)
	start, end := s.calculator.FetchWindow(month)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schedules, err = s.listAllSchedules(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = s.transactionRepo.FindTransactionsByDateRange(gctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch transactions between %s and %s: %w", start, end, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load running total inputs", slog.String("month", month.String()))
		return nil, nil, err
	}
	return schedules, txns, nil
}

// listAllSchedules drains every page of the schedule store.
func (s *runningTotalService) listAllSchedules(ctx context.Context) ([]domain.Schedule, error) {
	var (
		all       []domain.Schedule
		nextToken *string
	)
	for {
		page, token, err := s.scheduleRepo.ListSchedules(ctx, s.schedulePageSize, nextToken)
		if err != nil {
			return nil, fmt.Errorf("failed to list schedules: %w", err)
		}
		all = append(all, page...)
		s.LogDebug(ctx, "Fetched schedule page", slog.Int("page_size", len(page)), slog.Int("total", len(all)))
		if token == nil {
			return all, nil
		}
		nextToken = token
	}
}
