package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// captureLogs routes the default logger into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"HTTP_ADDR", "REDIS_ADDR", "KAFKA_BROKERS", "KAFKA_TOPIC", "TOKEN_TTL", "JWT_SECRET"} {
			t.Setenv(key, "")
		}
		cfg := Load()
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
		assert.Equal(t, "marketplace.events", cfg.KafkaTopic)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
		assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	})

	t.Run("warns about the default secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		logs := captureLogs(t)
		Load()
		assert.Contains(t, logs.String(), "JWT_SECRET is not set")
	})

	t.Run("configured secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cr3t")
		logs := captureLogs(t)
		cfg := Load()
		assert.Equal(t, "s3cr3t", cfg.JWTSecret)
		assert.NotContains(t, logs.String(), "JWT_SECRET")
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":9000")
		t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
		t.Setenv("TOKEN_TTL", "30m")
		cfg := Load()
		assert.Equal(t, ":9000", cfg.HTTPAddr)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
		assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	})

	t.Run("bad ttl keeps default", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		cfg := Load()
		assert.Equal(t, time.Hour, cfg.TokenTTL)
	})
}
