// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/scraper.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (admin API)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Upstream availability API
	WDWBaseURL        string
	DLRBaseURL        string
	RequestsPerMinute int
	MinQueryDelay     time.Duration
	MaxQueryDelay     time.Duration
	ScrapeWorkers     int

	// Party composition sent with every availability request
	PartyAdults   int
	PartyChildren int

	// Notifications
	SendGridAPIKey string
	FromEmail      string
	FromName       string

	// Scheduling
	ScrapeInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", envOr("SUPABASE_DB_URL", ""))
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or SUPABASE_DB_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 5),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"https://mouseagents.com",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		WDWBaseURL:        envOr("WDW_BASE_URL", "https://disneyworld.disney.go.com"),
		DLRBaseURL:        envOr("DLR_BASE_URL", "https://disneyland.disney.go.com"),
		RequestsPerMinute: envInt("UPSTREAM_REQUESTS_PER_MINUTE", 20),
		MinQueryDelay:     time.Duration(envInt("MIN_QUERY_DELAY_MS", 2000)) * time.Millisecond,
		MaxQueryDelay:     time.Duration(envInt("MAX_QUERY_DELAY_MS", 8000)) * time.Millisecond,
		ScrapeWorkers:     envInt("SCRAPE_WORKERS", 2),

		PartyAdults:   envInt("PARTY_ADULTS", 2),
		PartyChildren: envInt("PARTY_CHILDREN", 0),

		SendGridAPIKey: envOr("SENDGRID_API_KEY", ""),
		FromEmail:      envOr("ALERT_FROM_EMAIL", "alerts@mouseagents.com"),
		FromName:       envOr("ALERT_FROM_NAME", "Mouse Agents Room Finder"),

		ScrapeInterval: time.Duration(envInt("SCRAPE_INTERVAL_MINUTES", 30)) * time.Minute,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
