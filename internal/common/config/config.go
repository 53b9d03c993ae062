package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	OracleStub = "stub"
	OracleEVM  = "evm"
	OracleTON  = "ton"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:5173"`
	}

	Storage struct {
		// memory seeds sample rows and loses everything on restart.
		Driver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	}

	Postgres struct {
		DSN             string        `env:"DATABASE_URL"`
		MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
		MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
		ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
		AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	}

	Redis struct {
		Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
		Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int           `env:"REDIS_PORT" envDefault:"6379"`
		Password string        `env:"REDIS_PASSWORD" envDefault:""`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"30s"`
	}

	Chain struct {
		Oracle string `env:"CHAIN_ORACLE" envDefault:"stub"`
		RPCURL string `env:"CHAIN_RPC_URL"`
		// TonAPI is used when CHAIN_ORACLE=ton
		TonAPIURL   string `env:"TONAPI_URL" envDefault:"https://tonapi.io"`
		TonAPIToken string `env:"TONAPI_TOKEN"`
	}

	// Per client IP limits on write endpoints that touch money or identity.
	RateLimit struct {
		RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
		Burst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
	}
}

// RedisAddr returns host:port for the redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func Load() (*Config, error) {
	// .env is optional; in production variables come from the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch c.Chain.Oracle {
	case OracleStub:
	case OracleEVM:
		if c.Chain.RPCURL == "" {
			return fmt.Errorf("CHAIN_RPC_URL is required when CHAIN_ORACLE=%s", OracleEVM)
		}
	case OracleTON:
	default:
		return fmt.Errorf("unknown CHAIN_ORACLE %q", c.Chain.Oracle)
	}

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return nil
}
