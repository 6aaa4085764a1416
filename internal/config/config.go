package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. It is only safe for local development.
const DefaultJWTSecret = "supersecret"

type Config struct {
	ServiceName  string
	HTTPAddr     string
	PostgresDSN  string
	RedisAddr    string
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string
	JWTSecret    string
	TokenTTL     time.Duration
	OTLPEndpoint string
	LogLevel     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file, using default values", "error", err)
	}

	cfg := &Config{
		ServiceName:  getenv("SERVICE_NAME", "campus-market"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		PostgresDSN:  getenv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=market sslmode=disable"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: splitList(getenv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   getenv("KAFKA_TOPIC", "marketplace.events"),
		KafkaGroupID: getenv("KAFKA_GROUP_ID", "campus-market-activity"),
		JWTSecret:    getenv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:     time.Hour,
		OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			slog.Warn("invalid TOKEN_TTL, using default", "value", raw, "error", err)
		} else {
			cfg.TokenTTL = ttl
		}
	}

	if cfg.JWTSecret == DefaultJWTSecret {
		slog.Warn("JWT_SECRET is not set, signing tokens with the development default")
	}

	slog.Info("config loaded", "http_addr", cfg.HTTPAddr, "redis_addr", cfg.RedisAddr, "kafka_brokers", cfg.KafkaBrokers, "kafka_topic", cfg.KafkaTopic)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
