package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config は環境変数から読み込むアプリケーション設定です。
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	DB    DBConfig
	Redis RedisConfig
}

// JWTConfig はトークンの署名と検証の設定です。秘密鍵・発行者・
// 受信者はデフォルトを持たず、未設定なら起動に失敗します。
type JWTConfig struct {
	Secret          string `env:"JWT_SECRET,   required"`
	Issuer          string `env:"JWT_ISSUER,   required"`
	Audience        string `env:"JWT_AUDIENCE, required"`
	ExpirationHours int    `env:"JWT_EXPIRATION_HOURS, default=2"`
}

type DBConfig struct {
	Host          string `env:"DB_HOST,     default=localhost"`
	Port          string `env:"DB_PORT,     default=5432"`
	User          string `env:"DB_USER,     default=postgres"`
	Password      string `env:"DB_PASSWORD"`
	Name          string `env:"DB_NAME,     default=vehicle_db"`
	SSLMode       string `env:"DB_SSLMODE,  default=disable"`
	RunMigrations bool   `env:"RUN_MIGRATIONS, default=false"`
	SeedUsers     bool   `env:"SEED_USERS,     default=false"`
}

// RedisConfig はブランド一覧キャッシュ用の接続設定です。
// Hostが空ならキャッシュは無効になります。
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT, default=6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// DSN builds the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Enabled reports whether a Redis endpoint is configured.
func (c RedisConfig) Enabled() bool { return c.Host != "" }

// Addr returns the host:port pair for the Redis client.
func (c RedisConfig) Addr() string { return c.Host + ":" + c.Port }

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
