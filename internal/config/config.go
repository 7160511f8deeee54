package config

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vaultpass/passgen/internal/logging"
)

const envPrefix = "PASSGEN_"

type Config struct {
	Port      string
	Env       string
	LogLevel  string
	APISecret string
	TokenTTL  time.Duration
	RateLimit float64
	RateBurst int
}

// Load reads an optional .env file and then the PASSGEN_* environment.
// Malformed numbers and durations fall back to their defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.L.Warn("reading .env", zap.Error(err))
	}

	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		APISecret: getEnv("API_SECRET", ""),
		TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),
		RateLimit: getFloat("RATE_LIMIT", 5),
		RateBurst: getInt("RATE_BURST", 10),
	}

	if cfg.Env == "production" && cfg.APISecret == "" {
		logging.L.Warn(envPrefix + "API_SECRET is not set, API authentication is disabled")
	}

	return cfg
}

// Bootstrap starts logging on w before calling Load so that its warnings are
// not lost. The level comes from the process environment first and is then
// replaced by the loaded LogLevel, which may come from .env.
func Bootstrap(w io.Writer) (Config, *zap.Logger, error) {
	logger, err := logging.Initialize(os.Getenv(envPrefix+"LOG_LEVEL"), w)
	if err != nil {
		return Config{}, nil, err
	}

	cfg := Load()
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return cfg, logger, err
	}
	return cfg, logger, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		warnInvalid(key, v, err)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		warnInvalid(key, v, err)
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		warnInvalid(key, v, err)
		return fallback
	}
	return d
}

func warnInvalid(key, value string, err error) {
	logging.L.Warn("invalid config value, using default",
		zap.String("key", envPrefix+key),
		zap.String("value", value),
		zap.Error(err),
	)
}
