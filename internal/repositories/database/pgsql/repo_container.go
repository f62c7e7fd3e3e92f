package pgsql

import (
	portsrepo "github.com/SscSPs/budget_calendar_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ScheduleRepo:    newPgxScheduleRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
	}
}
