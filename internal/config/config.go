// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/facts.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ptpsports/clinic-facts/internal/eventfacts"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
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
	Debug       bool
	LogLevel    slog.Level

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Response cache. Off by default: every page render re-reads the store.
	CacheEnabled bool
	CacheTTL     time.Duration

	// Site
	SiteURL      string
	SiteTimezone string
	Currency     string

	// Event series constants (sport, organizer, performer, brand strings)
	ProfileFile string
	Profile     eventfacts.Profile
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}
	return load(dbURL)
}

// LoadOffline is Load without the database requirement, for CLI commands
// that run against fixture files.
func LoadOffline() (*Config, error) {
	return load(envOr("DATABASE_URL", ""))
}

func load(dbURL string) (*Config, error) {
	cfg := &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
		LogLevel:    envLevel("LOG_LEVEL", slog.LevelInfo),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:8080",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", false),
		CacheTTL:     time.Duration(envInt("CACHE_TTL_SECONDS", 60)) * time.Second,

		SiteURL:      strings.TrimRight(envOr("SITE_URL", "https://ptpsummercamps.com"), "/"),
		SiteTimezone: envOr("SITE_TIMEZONE", ""),
		Currency:     envOr("STORE_CURRENCY", "USD"),

		ProfileFile: envOr("EVENT_PROFILE_FILE", ""),
		Profile:     eventfacts.DefaultProfile(),
	}
	if cfg.Debug {
		cfg.LogLevel = slog.LevelDebug
	}

	if cfg.ProfileFile != "" {
		p, err := LoadProfile(cfg.ProfileFile)
		if err != nil {
			return nil, err
		}
		cfg.Profile = p
	}
	if cfg.Profile.Organizer.URL == "" {
		cfg.Profile.Organizer.URL = cfg.SiteURL
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location resolves SITE_TIMEZONE, falling back to the system zone.
func (c *Config) Location() *time.Location {
	return eventfacts.ResolveLocation(nil, c.SiteTimezone)
}

// LoadProfile reads an event profile YAML file. Blank fields keep their
// defaults.
func LoadProfile(path string) (eventfacts.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return eventfacts.Profile{}, fmt.Errorf("read event profile: %w", err)
	}
	p := eventfacts.DefaultProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return eventfacts.Profile{}, fmt.Errorf("parse event profile %s: %w", path, err)
	}
	return p, nil
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

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(v)); err == nil {
			return l
		}
	}
	return fallback
}
