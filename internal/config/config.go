package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env      string
	HTTPAddr string
	Database DatabaseConfig
	Redis    RedisConfig
	Insight  InsightConfig
	Tracing  TracingConfig
	Worker   WorkerConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type InsightConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

type WorkerConfig struct {
	SweepInterval time.Duration
}

func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		HTTPAddr: normalizeAddr(getEnv("HTTP_ADDR", ":8080")),
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", "postgres"),
			Name:     getEnv("DATABASE_NAME", "stoper"),
			SSLMode:  getEnv("DATABASE_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Insight: InsightConfig{
			Endpoint: getEnv("INSIGHT_ENDPOINT", ""),
			APIKey:   getEnv("INSIGHT_API_KEY", ""),
			Timeout:  getDuration("INSIGHT_TIMEOUT", 15*time.Second),
			CacheTTL: getDuration("INSIGHT_CACHE_TTL", 5*time.Minute),
		},
		Tracing: TracingConfig{
			Enabled:  getBool("TRACING_ENABLED", false),
			Endpoint: getEnv("OTLP_ENDPOINT", "localhost:4317"),
		},
		Worker: WorkerConfig{
			SweepInterval: getDuration("LOW_STOCK_SWEEP_INTERVAL", time.Minute),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func normalizeAddr(addr string) string {
	if addr == "" {
		return addr
	}

	if addr[0] == ':' || addr[0] == '[' {
		return addr
	}

	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}

	return ":" + addr
}
