package repositories

import (
	"context"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
)

// ScheduleReader defines read operations for schedule data
type ScheduleReader interface {
	// FindScheduleByID retrieves a specific schedule by its unique identifier.
	// Returns apperrors.ErrNotFound if it does not exist.
	FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)

	// ListSchedules retrieves one page of schedules ordered by creation time using token-based pagination.
	// It returns the schedules, a token for the next page (nil on the last page), and an error.
	ListSchedules(ctx context.Context, limit int, nextToken *string) ([]domain.Schedule, *string, error)
}

// ScheduleWriter defines write operations for schedule data
type ScheduleWriter interface {
	// SaveSchedule persists a new schedule.
	SaveSchedule(ctx context.Context, schedule domain.Schedule) error

	// UpdateSchedule overwrites an existing schedule.
	UpdateSchedule(ctx context.Context, schedule domain.Schedule) error

	// DeleteSchedule removes a schedule. Returns apperrors.ErrNotFound if it does not exist.
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

// ScheduleRepositoryFacade combines all schedule-related repository interfaces
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
}
