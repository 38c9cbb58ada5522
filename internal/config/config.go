package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL       string
	AuthToken        string
	RedisURL         string
	RequestTimeout   time.Duration
	FreshnessWindow  time.Duration
	SnapshotTTL      time.Duration
	CircuitFailLimit int
	CircuitCooldown  time.Duration
	LogLevel         string
}

func Load() Config {
	return Config{
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:8000"),
		AuthToken:        getEnv("AUTH_TOKEN", ""),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		RequestTimeout:   getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		FreshnessWindow:  getEnvDuration("FRESHNESS_WINDOW", 10*time.Second),
		SnapshotTTL:      getEnvDuration("SNAPSHOT_TTL", 900*time.Second),
		CircuitFailLimit: getEnvInt("CIRCUIT_FAIL_LIMIT", 0),
		CircuitCooldown:  getEnvDuration("CIRCUIT_COOLDOWN", 20*time.Second),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return time.Duration(i) * time.Second
}
