package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

type Config struct {
	Port              string
	Env               string
	LogLevel          slog.Level
	LogFormat         string
	MaxBatchCount     int
	ShortLengthPolicy crypto.ShortLengthPolicy
	RateLimitRPS      float64
	RateLimitBurst    int
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          parseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
		MaxBatchCount:     getEnvInt("MAX_BATCH_COUNT", crypto.MaxBatchCount),
		ShortLengthPolicy: parsePolicy(getEnv("SHORT_LENGTH_POLICY", "clamp")),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 20),
	}

	if cfg.Env == "production" {
		cfg.LogFormat = "json"
	}

	return cfg
}

// NewLogger builds the process logger from the configured level and format.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt reads a positive integer, falling back on anything else.
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid rate in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		slog.Warn("unknown LOG_LEVEL, using info", "value", s)
		return slog.LevelInfo
	}
	return level
}

func parsePolicy(s string) crypto.ShortLengthPolicy {
	switch strings.ToLower(s) {
	case "reject":
		return crypto.Reject
	case "clamp":
		return crypto.ClampUp
	default:
		slog.Warn("unknown SHORT_LENGTH_POLICY, using clamp", "value", s)
		return crypto.ClampUp
	}
}
