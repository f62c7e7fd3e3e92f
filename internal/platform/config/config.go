package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string

	// Running totals
	EpochMonth       domain.YearMonth // first month counted in carryover
	WorkingCurrency  string           // the single currency the running totals are computed in
	SchedulePageSize int              // page size used when listing every schedule

	// HTTP edge
	RateLimit          string // ulule formatted rate, e.g. "300-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("EPOCH_MONTH", "2020-01")
	v.SetDefault("WORKING_CURRENCY", "USD")
	v.SetDefault("SCHEDULE_PAGE_SIZE", 1000)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override defaults.
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		WorkingCurrency:  strings.ToUpper(strings.TrimSpace(v.GetString("WORKING_CURRENCY"))),
		SchedulePageSize: v.GetInt("SCHEDULE_PAGE_SIZE"),
		RateLimit:        v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	epoch, err := domain.ParseYearMonth(v.GetString("EPOCH_MONTH"))
	if err != nil {
		return nil, fmt.Errorf("invalid EPOCH_MONTH: %w", err)
	}
	cfg.EpochMonth = epoch

	if _, err := domain.ZeroMoney(cfg.WorkingCurrency); err != nil {
		return nil, fmt.Errorf("invalid WORKING_CURRENCY: %w", err)
	}

	if cfg.SchedulePageSize <= 0 {
		log.Printf("Warning: Invalid SCHEDULE_PAGE_SIZE (%d). Defaulting to 1000.\n", cfg.SchedulePageSize)
		cfg.SchedulePageSize = 1000
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
