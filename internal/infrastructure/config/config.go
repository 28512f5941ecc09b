package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Scope ScopeConfig
	Sweep SweepConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=agency_backoffice"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type ScopeConfig struct {
	// CacheTTL bounds how long a resolved agency id is reused.
	CacheTTL time.Duration `env:"SCOPE_CACHE_TTL, default=5m"`
	// UseRedis switches the scope cache from in-process to Redis-backed.
	UseRedis bool `env:"SCOPE_CACHE_REDIS, default=false"`
}

type SweepConfig struct {
	// Schedule is a cron expression for the notification sweep. Empty
	// disables the scheduler; the manual endpoint still works.
	Schedule string `env:"SWEEP_SCHEDULE, default=0 7 * * *"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic("config: failed to load configuration: " + err.Error())
	}
	return &cfg
}
