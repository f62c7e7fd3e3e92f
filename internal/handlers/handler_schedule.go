package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
	"github.com/SscSPs/budget_calendar_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// scheduleHandler handles HTTP requests related to recurring schedules.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

func newScheduleHandler(ss portssvc.ScheduleSvcFacade) *scheduleHandler {
	return &scheduleHandler{scheduleService: ss}
}

// RegisterScheduleRoutes registers routes related to schedules.
func RegisterScheduleRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	h := newScheduleHandler(scheduleService)

	schedules := rg.Group("/schedules")
	{
		schedules.POST("", h.createSchedule)
		schedules.GET("", h.listSchedules)
		schedules.GET("/:schedule_id", h.getSchedule)
		schedules.PATCH("/:schedule_id", h.updateSchedule)
		schedules.DELETE("/:schedule_id", h.deleteSchedule)
		schedules.GET("/:schedule_id/occurrences", h.getOccurrences)
	}
}

// createSchedule godoc
// @Summary Create a schedule
// @Description Creates a recurring income or expense. Income amounts are stored positive and expense amounts negative, whatever sign is sent.
// @Tags schedules
// @Accept  json
// @Produce  json
// @Param   schedule body dto.CreateScheduleRequest true "Schedule details"
// @Success 201 {object} dto.ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create schedule"
// @Security BearerAuth
// @Router /schedules [post]
func (h *scheduleHandler) createSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating schedule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create schedule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToScheduleResponse(schedule))
}

// getSchedule godoc
// @Summary Get a schedule
// @Tags schedules
// @Produce  json
// @Param   schedule_id path string true "Schedule ID"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 500 {object} map[string]string "Failed to retrieve schedule"
// @Security BearerAuth
// @Router /schedules/{schedule_id} [get]
func (h *scheduleHandler) getSchedule(c *gin.Context) {
	scheduleID := c.Param("schedule_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("schedule_id", scheduleID))

	schedule, err := h.scheduleService.GetScheduleByID(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Schedule not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		} else {
			logger.Error("Failed to get schedule from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleResponse(schedule))
}

// listSchedules godoc
// @Summary List schedules
// @Description Retrieves a page of schedules ordered by creation time
// @Tags schedules
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSchedulesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list schedules"
// @Security BearerAuth
// @Router /schedules [get]
func (h *scheduleHandler) listSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSchedulesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListSchedules", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.scheduleService.ListSchedules(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list schedules from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schedules"})
		}
		return
	}

	logger.Info("Schedules listed successfully", slog.Int("count", len(resp.Schedules)))
	c.JSON(http.StatusOK, resp)
}

// updateSchedule godoc
// @Summary Update a schedule
// @Description Changes any of name, anchor, recurrence or amount. Omitted fields are kept.
// @Tags schedules
// @Accept  json
// @Produce  json
// @Param   schedule_id path string true "Schedule ID"
// @Param   schedule body dto.UpdateScheduleRequest true "Fields to change"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 500 {object} map[string]string "Failed to update schedule"
// @Security BearerAuth
// @Router /schedules/{schedule_id} [patch]
func (h *scheduleHandler) updateSchedule(c *gin.Context) {
	scheduleID := c.Param("schedule_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("schedule_id", scheduleID))

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	schedule, err := h.scheduleService.UpdateSchedule(c.Request.Context(), scheduleID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Schedule not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating schedule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update schedule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleResponse(schedule))
}

// deleteSchedule godoc
// @Summary Delete a schedule
// @Tags schedules
// @Param   schedule_id path string true "Schedule ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 500 {object} map[string]string "Failed to delete schedule"
// @Security BearerAuth
// @Router /schedules/{schedule_id} [delete]
func (h *scheduleHandler) deleteSchedule(c *gin.Context) {
	scheduleID := c.Param("schedule_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("schedule_id", scheduleID))

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.scheduleService.DeleteSchedule(c.Request.Context(), scheduleID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Schedule not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		} else {
			logger.Error("Failed to delete schedule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// getOccurrences godoc
// @Summary List the dates a schedule lands on
// @Description Expands the schedule within [start, end], both inclusive. An inverted window returns no dates; windows longer than 3660 days are rejected.
// @Tags schedules
// @Produce  json
// @Param   schedule_id path string true "Schedule ID"
// @Param   start query string true "Window start (YYYY-MM-DD)"
// @Param   end query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.OccurrencesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 500 {object} map[string]string "Failed to expand schedule"
// @Security BearerAuth
// @Router /schedules/{schedule_id}/occurrences [get]
func (h *scheduleHandler) getOccurrences(c *gin.Context) {
	scheduleID := c.Param("schedule_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("schedule_id", scheduleID))

	var params dto.OccurrencesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for occurrences", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	start, err := domain.ParseDate(params.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date. Use YYYY-MM-DD"})
		return
	}
	end, err := domain.ParseDate(params.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date. Use YYYY-MM-DD"})
		return
	}

	dates, err := h.scheduleService.GetScheduleOccurrences(c.Request.Context(), scheduleID, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Schedule not found for occurrences")
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected occurrence window", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to expand schedule", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to expand schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.OccurrencesResponse{
		ScheduleID:  scheduleID,
		Start:       start,
		End:         end,
		Occurrences: dates,
	})
}
