package dto

import (
	"time"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateScheduleRequest defines the data needed to create a recurring income or expense.
type CreateScheduleRequest struct {
	Type               string           `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Name               string           `json:"name" binding:"max=255"` // required for EXPENSE, checked by the domain
	Anchor             string           `json:"anchor" binding:"required,datetime=2006-01-02"`
	Pattern            string           `json:"pattern" binding:"required,recurrence_pattern"`
	CustomIntervalDays *int             `json:"customIntervalDays" binding:"omitempty,min=1"`
	Amount             *decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode       string           `json:"currencyCode" binding:"required,uppercase,len=3"`
}

// UpdateScheduleRequest carries the fields to change; nil fields are left alone.
// Pattern and CustomIntervalDays are applied together.
type UpdateScheduleRequest struct {
	Name               *string          `json:"name" binding:"omitempty,max=255"`
	Anchor             *string          `json:"anchor" binding:"omitempty,datetime=2006-01-02"`
	Pattern            *string          `json:"pattern" binding:"omitempty,recurrence_pattern"`
	CustomIntervalDays *int             `json:"customIntervalDays" binding:"omitempty,min=1"`
	Amount             *decimal.Decimal `json:"amount"`
	CurrencyCode       *string          `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
}

// ListSchedulesParams defines the query parameters for listing schedules.
type ListSchedulesParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=1000"`
	NextToken *string `form:"nextToken"`
}

// OccurrencesParams defines the date window for expanding a schedule.
type OccurrencesParams struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

// ScheduleResponse defines the data returned for a schedule.
type ScheduleResponse struct {
	ScheduleID         string          `json:"scheduleID"`
	Name               string          `json:"name"`
	Anchor             domain.Date     `json:"anchor"`
	Pattern            string          `json:"pattern"`
	CustomIntervalDays *int            `json:"customIntervalDays,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	CurrencyCode       string          `json:"currencyCode"`
	Type               string          `json:"type"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy      string          `json:"lastUpdatedBy"`
}

// ListSchedulesResponse wraps a page of schedules.
type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// OccurrencesResponse lists the dates a schedule lands on within a window.
type OccurrencesResponse struct {
	ScheduleID  string        `json:"scheduleID"`
	Start       domain.Date   `json:"start"`
	End         domain.Date   `json:"end"`
	Occurrences []domain.Date `json:"occurrences"`
}

// ToScheduleResponse converts a domain.Schedule to ScheduleResponse DTO.
func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:         s.ScheduleID,
		Name:               s.Name,
		Anchor:             s.Anchor,
		Pattern:            string(s.Pattern),
		CustomIntervalDays: s.CustomIntervalDays,
		Amount:             s.Amount.Amount(),
		CurrencyCode:       s.Amount.CurrencyCode(),
		Type:               string(s.Type),
		CreatedAt:          s.CreatedAt,
		CreatedBy:          s.CreatedBy,
		LastUpdatedAt:      s.LastUpdatedAt,
		LastUpdatedBy:      s.LastUpdatedBy,
	}
}

// ToScheduleResponses converts a slice of domain.Schedule.
func ToScheduleResponses(schedules []domain.Schedule) []ScheduleResponse {
	res := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		res[i] = ToScheduleResponse(&schedules[i])
	}
	return res
}
