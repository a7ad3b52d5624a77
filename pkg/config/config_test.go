package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Defaults(t *testing.T) {
	cfg, err := build(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "order_tracker", cfg.Database.Name)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "order-tracker-events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 24, cfg.Auth.ExpirationHours)
	assert.False(t, cfg.AuthEnabled())
}

func TestBuild_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "orders")
	t.Setenv("DATABASE_URL", "file:orders.db")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("REDIS_TTL", "30s")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("JWT_EXPIRATION_HOURS", "8")

	cfg, err := build(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "orders", cfg.Database.Name)
	assert.Equal(t, "file:orders.db", cfg.Database.URL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 8, cfg.Auth.ExpirationHours)
	assert.True(t, cfg.AuthEnabled())
}

func TestBuild_DottedEnvWinsOverAlias(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("PORT", "8080")

	cfg, err := build(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.App.Port)
}
