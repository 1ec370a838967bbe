package db

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/schemata-dev/schemata/internal/qerr"
)

// Config holds the database connection settings, read from the
// environment. A .env file in the working directory is honored when
// present.
type Config struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

// LoadConfig reads the configuration from the environment, loading a
// .env file first if one exists.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, qerr.Wrap(qerr.ErrConfigLoad, err, "failed to parse environment configuration")
	}
	return cfg, nil
}
