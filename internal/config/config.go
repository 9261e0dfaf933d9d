package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Store    StoreConfig
	Worker   WorkerConfig
	Riot     RiotConfig
	Reward   RewardConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"wagers"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// StoreConfig selects the repository backend: the in-memory arena store
// (default) or postgres.
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" envDefault:"memory"`
}
type WorkerConfig struct {
	ResolutionInterval time.Duration `env:"WORKER_RESOLUTION_INTERVAL" envDefault:"1m"`
}
type RiotConfig struct {
	APIKey           string        `env:"RIOT_API_KEY"`
	HTTPTimeout      time.Duration `env:"RIOT_HTTP_TIMEOUT" envDefault:"10s"`
	RecentMatchCount int           `env:"RIOT_RECENT_MATCH_COUNT" envDefault:"10"`
}
type RewardConfig struct {
	Token  string `env:"REWARD_TOKEN" envDefault:"demo-token"`
	Amount int64  `env:"REWARD_AMOUNT" envDefault:"50"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
