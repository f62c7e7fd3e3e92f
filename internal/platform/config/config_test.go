package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("EPOCH_MONTH", "2020-01")
	v.SetDefault("WORKING_CURRENCY", "USD")
	v.SetDefault("SCHEDULE_PAGE_SIZE", 1000)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, 2020, cfg.EpochMonth.Year)
	assert.Equal(t, time.January, cfg.EpochMonth.Month)
	assert.Equal(t, "USD", cfg.WorkingCurrency)
	assert.Equal(t, 1000, cfg.SchedulePageSize)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"EPOCH_MONTH":          "2018-07",
		"WORKING_CURRENCY":     " eur ",
		"SCHEDULE_PAGE_SIZE":   0,
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2018, cfg.EpochMonth.Year)
	assert.Equal(t, time.July, cfg.EpochMonth.Month)
	assert.Equal(t, "EUR", cfg.WorkingCurrency)
	assert.Equal(t, 1000, cfg.SchedulePageSize, "non-positive page size falls back to the reference cap")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_InvalidValues(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"EPOCH_MONTH": "January 2020"}))
	assert.ErrorContains(t, err, "EPOCH_MONTH")

	_, err = fromViper(newTestViper(map[string]any{"WORKING_CURRENCY": "DOLLARS"}))
	assert.ErrorContains(t, err, "WORKING_CURRENCY")
}
