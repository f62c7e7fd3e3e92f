package services

import (
	"context"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
)

// ScheduleReaderSvc defines read operations for recurring schedules
type ScheduleReaderSvc interface {
	// GetScheduleByID retrieves a schedule. Returns apperrors.ErrNotFound for an unknown id.
	GetScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)

	// ListSchedules retrieves one page of schedules.
	ListSchedules(ctx context.Context, params dto.ListSchedulesParams) (*dto.ListSchedulesResponse, error)

	// GetScheduleOccurrences expands a schedule within [start, end].
	// Returns apperrors.ErrNotFound for an unknown id.
	GetScheduleOccurrences(ctx context.Context, scheduleID string, start, end domain.Date) ([]domain.Date, error)
}

// ScheduleWriterSvc defines write operations for recurring schedules
type ScheduleWriterSvc interface {
	// CreateSchedule creates an income or expense schedule.
	CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest, userID string) (*domain.Schedule, error)

	// UpdateSchedule applies the non-nil fields of req.
	UpdateSchedule(ctx context.Context, scheduleID string, req dto.UpdateScheduleRequest, userID string) (*domain.Schedule, error)

	// DeleteSchedule removes a schedule.
	DeleteSchedule(ctx context.Context, scheduleID string, userID string) error
}

// ScheduleSvcFacade combines all schedule-related service interfaces
type ScheduleSvcFacade interface {
	ScheduleReaderSvc
	ScheduleWriterSvc
}
