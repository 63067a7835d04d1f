package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string // Empty selects the in-memory stores
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	RunMigrations      bool
	RedisURL           string // When set, report cells are kept in Redis
	AuthEnabled        bool
	JWTSecret          string
	RateLimit          string // ulule/limiter format, e.g. "120-M"
	CORSAllowedOrigins []string
	LogLevel           string
	SeedDefaultChart   bool

	// Reporting
	ReportCurrency  string
	FiscalYearStart string
	FiscalYearEnd   string
	SectionMapFile  string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	year := time.Now().Year()
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SEED_DEFAULT_CHART", true)
	viper.SetDefault("REPORT_CURRENCY", "SAR")
	viper.SetDefault("FISCAL_YEAR_START", fmt.Sprintf("%04d-01-01", year))
	viper.SetDefault("FISCAL_YEAR_END", fmt.Sprintf("%04d-12-31", year))
	viper.SetDefault("SECTION_MAP_FILE", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:    viper.GetBool("RUN_MIGRATIONS"),
		RedisURL:         viper.GetString("REDIS_URL"),
		AuthEnabled:      viper.GetBool("AUTH_ENABLED"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		SeedDefaultChart: viper.GetBool("SEED_DEFAULT_CHART"),
		ReportCurrency:   viper.GetString("REPORT_CURRENCY"),
		FiscalYearStart:  viper.GetString("FISCAL_YEAR_START"),
		FiscalYearEnd:    viper.GetString("FISCAL_YEAR_END"),
		SectionMapFile:   viper.GetString("SECTION_MAP_FILE"),
	}
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory storage.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.AuthEnabled && cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set when AUTH_ENABLED is true in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if _, err := cfg.fiscalYear(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fiscalYear parses and checks the configured period, returning its end date.
func (c *Config) fiscalYear() (time.Time, error) {
	start, err := time.Parse(domain.DateLayout, c.FiscalYearStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid FISCAL_YEAR_START %q: %w", c.FiscalYearStart, err)
	}
	end, err := time.Parse(domain.DateLayout, c.FiscalYearEnd)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid FISCAL_YEAR_END %q: %w", c.FiscalYearEnd, err)
	}
	if end.Before(start) {
		return time.Time{}, fmt.Errorf("FISCAL_YEAR_END %s is before FISCAL_YEAR_START %s", c.FiscalYearEnd, c.FiscalYearStart)
	}
	return end, nil
}

// ReportConfig derives the statement configuration. The section map comes
// from SectionMapFile when set, otherwise the default chart's map is used.
func (c *Config) ReportConfig() (ledger.ReportConfig, error) {
	end, err := c.fiscalYear()
	if err != nil {
		return ledger.ReportConfig{}, err
	}

	rc := ledger.DefaultReportConfig(end.Year())
	rc.FiscalYearStart = c.FiscalYearStart
	rc.FiscalYearEnd = c.FiscalYearEnd
	if c.ReportCurrency != "" {
		rc.Currency = strings.ToUpper(c.ReportCurrency)
	}
	if c.SectionMapFile != "" {
		sections, err := LoadSectionMap(c.SectionMapFile)
		if err != nil {
			return ledger.ReportConfig{}, err
		}
		rc.Sections = sections
	}
	return rc, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
