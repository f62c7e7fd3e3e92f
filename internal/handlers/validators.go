package handlers

import (
	"sync"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs to gin's validator.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("recurrence_pattern", validateRecurrencePattern)
	})
}

// validateRecurrencePattern accepts the names of the supported recurrence patterns.
func validateRecurrencePattern(fl validator.FieldLevel) bool {
	return domain.RecurrencePattern(fl.Field().String()).IsValid()
}
