package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	// Gateway is the upstream booking platform API that owns all durable data.
	Gateway struct {
		BaseURL    string `env:"GATEWAY_BASE_URL,required"`
		APIKey     string `env:"GATEWAY_API_KEY" envDefault:""`
		TimeoutSec int    `env:"GATEWAY_TIMEOUT_SEC" envDefault:"15"`
	}

	Directory struct {
		CacheTTLSec int `env:"DIRECTORY_CACHE_TTL_SEC" envDefault:"30"`
	}

	Reports struct {
		CacheTTLSec  int `env:"EARNINGS_CACHE_TTL_SEC" envDefault:"120"`
		FetchWorkers int `env:"REPORT_FETCH_WORKERS" envDefault:"4"`
	}

	Confirmations struct {
		TTLSec int `env:"CONFIRMATION_TTL_SEC" envDefault:"300"`
	}

	// PasswordMinLength is the single authoritative minimum for every
	// password form in the console.
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH" envDefault:"6"`
}

func Load() *Config {
	// Missing .env is fine; in production the variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}

func (c *Config) GatewayTimeout() time.Duration {
	return time.Duration(c.Gateway.TimeoutSec) * time.Second
}

func (c *Config) DirectoryCacheTTL() time.Duration {
	return time.Duration(c.Directory.CacheTTLSec) * time.Second
}

func (c *Config) EarningsCacheTTL() time.Duration {
	return time.Duration(c.Reports.CacheTTLSec) * time.Second
}

func (c *Config) ConfirmationTTL() time.Duration {
	return time.Duration(c.Confirmations.TTLSec) * time.Second
}
