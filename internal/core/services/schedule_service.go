package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
	"github.com/google/uuid"
)

// MaxOccurrenceWindowDays bounds the window GetScheduleOccurrences will expand.
const MaxOccurrenceWindowDays = 3660

// scheduleService implements portssvc.ScheduleSvcFacade
type scheduleService struct {
	BaseService
	scheduleRepo portsrepo.ScheduleRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewScheduleService creates a new schedule service
func NewScheduleService(scheduleRepo portsrepo.ScheduleRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

// CreateSchedule creates an income or expense schedule with a normalized amount sign.
func (s *scheduleService) CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest, userID string) (*domain.Schedule, error) {
	anchor, err := domain.ParseDate(req.Anchor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	value, err := requireAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	amount, err := resolveMoney(ctx, s.currencyRepo, req.CurrencyCode, value)
	if err != nil {
		return nil, err
	}

	schedule, err := domain.NewSchedule(
		uuid.NewString(),
		domain.EntryType(req.Type),
		req.Name,
		anchor,
		amount,
		domain.RecurrencePattern(req.Pattern),
		req.CustomIntervalDays,
		s.stamp(userID),
	)
	if err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.SaveSchedule(ctx, *schedule); err != nil {
		s.LogError(ctx, err, "Failed to save schedule", slog.String("schedule_id", schedule.ScheduleID))
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.LogInfo(ctx, "Schedule created",
		slog.String("schedule_id", schedule.ScheduleID),
		slog.String("type", string(schedule.Type)),
		slog.String("pattern", string(schedule.Pattern)))
	return schedule, nil
}

// GetScheduleByID retrieves a schedule by id.
func (s *scheduleService) GetScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule %s: %w", scheduleID, err)
	}
	return schedule, nil
}

// ListSchedules retrieves a page of schedules.
func (s *scheduleService) ListSchedules(ctx context.Context, params dto.ListSchedulesParams) (*dto.ListSchedulesResponse, error) {
	schedules, nextToken, err := s.scheduleRepo.ListSchedules(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return &dto.ListSchedulesResponse{
		Schedules: dto.ToScheduleResponses(schedules),
		NextToken: nextToken,
	}, nil
}

// UpdateSchedule routes each provided field through the matching aggregate mutator.
func (s *scheduleService) UpdateSchedule(ctx context.Context, scheduleID string, req dto.UpdateScheduleRequest, userID string) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule %s for update: %w", scheduleID, err)
	}
	stamp := s.stamp(userID)

	if req.Name != nil {
		if err := schedule.UpdateName(*req.Name, stamp); err != nil {
			return nil, err
		}
	}
	if req.Anchor != nil {
		anchor, err := domain.ParseDate(*req.Anchor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if err := schedule.UpdateAnchor(anchor, stamp); err != nil {
			return nil, err
		}
	}
	if req.Pattern != nil || req.CustomIntervalDays != nil {
		pattern := schedule.Pattern
		if req.Pattern != nil {
			pattern = domain.RecurrencePattern(*req.Pattern)
		}
		interval := req.CustomIntervalDays
		if interval == nil && pattern == domain.Custom {
			interval = schedule.CustomIntervalDays
		}
		if err := schedule.UpdateRecurrence(pattern, interval, stamp); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil || req.CurrencyCode != nil {
		amount := schedule.Amount.Amount()
		if req.Amount != nil {
			amount = *req.Amount
		}
		currencyCode := schedule.Amount.CurrencyCode()
		if req.CurrencyCode != nil {
			currencyCode = *req.CurrencyCode
		}
		money, err := resolveMoney(ctx, s.currencyRepo, currencyCode, amount)
		if err != nil {
			return nil, err
		}
		schedule.UpdateAmount(money, stamp)
	}

	if err := s.scheduleRepo.UpdateSchedule(ctx, *schedule); err != nil {
		s.LogError(ctx, err, "Failed to update schedule", slog.String("schedule_id", scheduleID))
		return nil, fmt.Errorf("failed to update schedule %s: %w", scheduleID, err)
	}
	s.LogInfo(ctx, "Schedule updated", slog.String("schedule_id", scheduleID))
	return schedule, nil
}

// DeleteSchedule removes a schedule.
func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID string, userID string) error {
	if err := s.scheduleRepo.DeleteSchedule(ctx, scheduleID); err != nil {
		return fmt.Errorf("failed to delete schedule %s: %w", scheduleID, err)
	}
	s.LogInfo(ctx, "Schedule deleted", slog.String("schedule_id", scheduleID), slog.String("user_id", userID))
	return nil
}

// GetScheduleOccurrences expands a stored schedule within [start, end].
func (s *scheduleService) GetScheduleOccurrences(ctx context.Context, scheduleID string, start, end domain.Date) ([]domain.Date, error) {
	if span := end.DayNumber() - start.DayNumber(); span > MaxOccurrenceWindowDays {
		return nil, fmt.Errorf("%w: window of %d days exceeds %d", apperrors.ErrValidation, span, MaxOccurrenceWindowDays)
	}
	schedule, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule %s: %w", scheduleID, err)
	}
	dates, err := schedule.Occurrences(start, end)
	if err != nil {
		s.LogError(ctx, err, "Stored schedule has an invalid recurrence", slog.String("schedule_id", scheduleID))
		return nil, fmt.Errorf("failed to expand schedule %s: %w", scheduleID, err)
	}
	return dates, nil
}
