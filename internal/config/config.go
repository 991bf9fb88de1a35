package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all runtime configuration. Units are always metric; the
// provider surface has no unit negotiation.
type AppConfig struct {
	OpenWeatherAPIKey string

	// DefaultCity is resolved at startup to warm the cache slot.
	DefaultCity string

	// CacheTTL is how long a cached snapshot stays fresh.
	CacheTTL time.Duration

	// RefreshInterval controls the background cache-warming job.
	RefreshInterval time.Duration

	// Timezone for calendar-day grouping and display strings. Defaults to
	// UTC so grouping boundaries do not shift with the host.
	Timezone *time.Location

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required")
	}

	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", "Bogor")

	ttlStr := getenvDefault("CACHE_TTL", "10m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	intervalStr := getenvDefault("FETCH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	tzName := getenvDefault("TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Timezone = loc

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
