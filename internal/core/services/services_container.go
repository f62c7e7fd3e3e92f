package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/budget_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/platform/config"
	"github.com/SscSPs/budget_calendar_app/internal/utils/accounting"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	calculator, err := accounting.NewRunningTotalCalculator(cfg.EpochMonth, cfg.WorkingCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to configure running totals: %w", err)
	}

	return &portssvc.ServiceContainer{
		Currency:    NewCurrencyService(repos.CurrencyRepo),
		Schedule:    NewScheduleService(repos.ScheduleRepo, repos.CurrencyRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.CurrencyRepo),
		RunningTotal: NewRunningTotalService(
			repos.ScheduleRepo,
			repos.TransactionRepo,
			calculator,
			WithSchedulePageSize(cfg.SchedulePageSize),
		),
	}, nil
}
