package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processWith(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	return &cfg, err
}

// TestLoad_Defaults は必須項目のみ与えた場合にデフォルト値が適用されることを検証します。
func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := processWith(t, map[string]string{
		"JWT_SECRET":   "s3cret",
		"JWT_ISSUER":   "vehicle_backend",
		"JWT_AUDIENCE": "vehicle_backend_clients",
	})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2, cfg.JWT.ExpirationHours)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.False(t, cfg.DB.RunMigrations)
	assert.False(t, cfg.Redis.Enabled(), "redis should be off without REDIS_HOST")
}

// TestLoad_MissingJWT はJWT設定が欠けていると読み込みが失敗することを検証します。
func TestLoad_MissingJWT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"no secret", map[string]string{"JWT_ISSUER": "i", "JWT_AUDIENCE": "a"}},
		{"no issuer", map[string]string{"JWT_SECRET": "s", "JWT_AUDIENCE": "a"}},
		{"no audience", map[string]string{"JWT_SECRET": "s", "JWT_ISSUER": "i"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := processWith(t, tt.env)
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_DSN(t *testing.T) {
	t.Parallel()

	c := DBConfig{Host: "db", Port: "5432", User: "app", Password: "pw", Name: "vehicles", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=vehicles sslmode=disable", c.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	t.Parallel()

	c := RedisConfig{Host: "cache", Port: "6379"}
	assert.True(t, c.Enabled())
	assert.Equal(t, "cache:6379", c.Addr())
}
