package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
	"github.com/SscSPs/budget_calendar_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// runningTotalHandler handles HTTP requests for running balances.
type runningTotalHandler struct {
	runningTotalService portssvc.RunningTotalService
}

func newRunningTotalHandler(rs portssvc.RunningTotalService) *runningTotalHandler {
	return &runningTotalHandler{runningTotalService: rs}
}

// RegisterRunningTotalRoutes registers routes for running balances.
func RegisterRunningTotalRoutes(rg *gin.RouterGroup, runningTotalService portssvc.RunningTotalService) {
	h := newRunningTotalHandler(runningTotalService)

	totals := rg.Group("/running-totals/:year/:month")
	{
		totals.GET("", h.getRunningTotals)
		totals.GET("/end-of-month", h.getEndOfMonthTotal)
	}
}

// getRunningTotals godoc
// @Summary Daily running totals for a month
// @Description Returns the carryover into the month and, for every day, the net amount and the balance after that day
// @Tags running-totals
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.RunningTotalsResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 500 {object} map[string]string "Failed to compute running totals"
// @Security BearerAuth
// @Router /running-totals/{year}/{month} [get]
func (h *runningTotalHandler) getRunningTotals(c *gin.Context) {
	year, month, ok := parseYearMonthParams(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int("year", year), slog.Int("month", month))

	totals, err := h.runningTotalService.GetRunningTotalsForMonth(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Running totals request rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute running totals", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute running totals"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRunningTotalsResponse(totals))
}

// getEndOfMonthTotal godoc
// @Summary Balance at the end of a month
// @Description Carryover into the month plus the month's net total
// @Tags running-totals
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.EndOfMonthTotalResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 500 {object} map[string]string "Failed to compute end of month total"
// @Security BearerAuth
// @Router /running-totals/{year}/{month}/end-of-month [get]
func (h *runningTotalHandler) getEndOfMonthTotal(c *gin.Context) {
	year, month, ok := parseYearMonthParams(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int("year", year), slog.Int("month", month))

	total, err := h.runningTotalService.GetEndOfMonthTotal(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("End of month request rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute end of month total", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute end of month total"})
		}
		return
	}

	ym, _ := domain.NewYearMonth(year, month)
	c.JSON(http.StatusOK, dto.ToEndOfMonthTotalResponse(ym, total))
}

// parseYearMonthParams reads :year and :month, writing a 400 when either is not a number.
func parseYearMonthParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be a number"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be a number"})
		return 0, 0, false
	}
	return year, month, true
}
