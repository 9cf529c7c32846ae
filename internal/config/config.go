package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process configuration, read from the environment.
type Config struct {
	// DatabasePath is the SQLite file holding the key-value store.
	DatabasePath string `env:"MERCADILLO_DB,     default=mercadillo.db"`
	// SessionSecret signs the durable session record.
	SessionSecret string `env:"SESSION_SECRET,   default=mercadillo-local"`
	LogLevel      string `env:"LOG_LEVEL,        default=info"`
	LogPretty     bool   `env:"LOG_PRETTY,       default=true"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
