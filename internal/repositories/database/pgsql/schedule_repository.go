package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_calendar_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_calendar_app/internal/models"
	"github.com/SscSPs/budget_calendar_app/internal/utils/mapping"
	"github.com/SscSPs/budget_calendar_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxScheduleRepository struct {
	BaseRepository
}

func newPgxScheduleRepository(pool *pgxpool.Pool) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

const scheduleColumns = `schedule_id, name, anchor_date, pattern, custom_interval_days, amount, currency_code, entry_type,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSchedule(row pgx.Row) (models.Schedule, error) {
	var m models.Schedule
	err := row.Scan(
		&m.ScheduleID,
		&m.Name,
		&m.AnchorDate,
		&m.Pattern,
		&m.CustomIntervalDays,
		&m.Amount,
		&m.CurrencyCode,
		&m.EntryType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSchedule inserts a new schedule.
func (r *PgxScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	m := mapping.ToModelSchedule(schedule)
	query := `INSERT INTO schedules (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	_, err := r.Pool.Exec(ctx, query,
		m.ScheduleID,
		m.Name,
		m.AnchorDate,
		m.Pattern,
		m.CustomIntervalDays,
		m.Amount,
		m.CurrencyCode,
		m.EntryType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "schedule", m.ScheduleID)
	}
	return nil
}

// UpdateSchedule overwrites every mutable column of a schedule.
func (r *PgxScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule) error {
	m := mapping.ToModelSchedule(schedule)
	query := `
		UPDATE schedules SET
			name = $2,
			anchor_date = $3,
			pattern = $4,
			custom_interval_days = $5,
			amount = $6,
			currency_code = $7,
			entry_type = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE schedule_id = $1;`

	tag, err := r.Pool.Exec(ctx, query,
		m.ScheduleID,
		m.Name,
		m.AnchorDate,
		m.Pattern,
		m.CustomIntervalDays,
		m.Amount,
		m.CurrencyCode,
		m.EntryType,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "schedule", m.ScheduleID)
	}
	return requireOneRow(tag, "schedule", m.ScheduleID)
}

// DeleteSchedule removes a schedule.
func (r *PgxScheduleRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM schedules WHERE schedule_id = $1;`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule %s: %w", scheduleID, err)
	}
	return requireOneRow(tag, "schedule", scheduleID)
}

// FindScheduleByID retrieves a schedule by its ID.
func (r *PgxScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE schedule_id = $1;`

	m, err := scanSchedule(r.Pool.QueryRow(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find schedule %s: %w", scheduleID, err)
	}

	schedule, err := mapping.ToDomainSchedule(m)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule %s: %w", scheduleID, err)
	}
	return &schedule, nil
}

// ListSchedules retrieves a page of schedules ordered by (created_at, schedule_id).
func (r *PgxScheduleRepository) ListSchedules(ctx context.Context, limit int, nextToken *string) ([]domain.Schedule, *string, error) {
	limit = pageLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var (
		rows pgx.Rows
		err  error
	)
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}
		query := `SELECT ` + scheduleColumns + ` FROM schedules
			WHERE (created_at, schedule_id) > ($1, $2)
			ORDER BY created_at, schedule_id
			LIMIT $3;`
		rows, err = r.Pool.Query(ctx, query, lastCreatedAt, lastID, fetchLimit)
	} else {
		query := `SELECT ` + scheduleColumns + ` FROM schedules
			ORDER BY created_at, schedule_id
			LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	page, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Schedule, error) {
		return scanSchedule(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan schedules: %w", err)
	}

	var nextTokenVal *string
	if len(page) > limit {
		page = page[:limit]
		last := page[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ScheduleID)
		nextTokenVal = &token
	}

	schedules, err := mapping.ToDomainScheduleSlice(page)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load schedules: %w", err)
	}
	return schedules, nextTokenVal, nil
}
