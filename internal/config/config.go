package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values. Collaborator
// secrets may be empty at load time; each operation verifies the credentials
// it needs before making any external call.
type Config struct {
	DatabaseURL        string
	Port               string
	ApifyToken         string
	GoogleSearchAPIKey string
	GoogleSearchCX     string
	GeminiAPIKey       string
	GeminiModel        string
	ScanResultLimit    int
	ProbeTimeout       time.Duration
	RateLimitScan      RateLimitConfig
	FallbackLanguage   string
	DefaultPhoneRegion string
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Port:               getEnv("PORT", "8080"),
		ApifyToken:         os.Getenv("APIFY_API_TOKEN"),
		GoogleSearchAPIKey: os.Getenv("GOOGLE_SEARCH_API_KEY"),
		GoogleSearchCX:     os.Getenv("GOOGLE_SEARCH_CX"),
		GeminiAPIKey:       os.Getenv("GOOGLE_AI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ScanResultLimit:    parsePositiveInt(getEnv("SCAN_RESULT_LIMIT", "5"), 5),
		ProbeTimeout:       parseDuration(getEnv("PROBE_TIMEOUT", "5s"), 5*time.Second),
		FallbackLanguage:   getEnv("FALLBACK_CONTACT_LANGUAGE", "Vietnamese"),
		DefaultPhoneRegion: getEnv("DEFAULT_PHONE_REGION", "VN"),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SCAN", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SCAN value: %w", err)
	}
	cfg.RateLimitScan = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parsePositiveInt(input string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
