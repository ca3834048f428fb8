package config

import (
	"os"
	"strconv"
	"time"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all application configuration
type Config struct {
	Bot      BotConfig
	Fallback FallbackConfig
}

// BotConfig controls the interpretation pipeline.
type BotConfig struct {
	Language        string
	DefaultCategory string
	DefaultCurrency string
	IdleExpiry      time.Duration
	SweepSchedule   string
}

// FallbackConfig controls the optional LLM fallback classifier.
type FallbackConfig struct {
	Enabled       bool
	Model         string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
	RateBurst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Bot: BotConfig{
			Language:        getEnv("BOT_LANGUAGE", "en-US"),
			DefaultCategory: getEnv("BOT_DEFAULT_CATEGORY", "Others"),
			DefaultCurrency: getEnv("BOT_DEFAULT_CURRENCY", "USD"),
			IdleExpiry:      getEnvAsDuration("BOT_IDLE_EXPIRY", 60*time.Minute),
			SweepSchedule:   getEnv("BOT_SWEEP_SCHEDULE", "*/10 * * * *"),
		},
		Fallback: FallbackConfig{
			Enabled:       getEnvAsBool("LLM_FALLBACK_ENABLED", false),
			Model:         getEnv("LLM_MODEL", "gpt-4o-mini"),
			APIKey:        getEnv("LLM_API_KEY", ""),
			Timeout:       getEnvAsDuration("LLM_TIMEOUT", 10*time.Second),
			RatePerSecond: getEnvAsFloat("LLM_RATE_PER_SECOND", 1),
			RateBurst:     getEnvAsInt("LLM_RATE_BURST", 5),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
