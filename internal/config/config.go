package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment. PageMaxLimit of zero leaves page sizes uncapped.
type Config struct {
	Port     string `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	APIKey       string `env:"API_KEY" envDefault:"my-secret-key"`
	APIKeyBcrypt string `env:"API_KEY_BCRYPT"`

	SeedProducts     bool `env:"SEED_PRODUCTS" envDefault:"true"`
	PageDefaultLimit int  `env:"PAGE_DEFAULT_LIMIT" envDefault:"10"`
	PageMaxLimit     int  `env:"PAGE_MAX_LIMIT" envDefault:"0"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsToken   string `env:"METRICS_TOKEN"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file from the working directory and then
// parses the process environment. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) validate() error {
	if c.APIKey == "" && c.APIKeyBcrypt == "" {
		return errors.New("API_KEY or API_KEY_BCRYPT is required")
	}
	if c.PageDefaultLimit < 1 {
		return fmt.Errorf("PAGE_DEFAULT_LIMIT must be positive, got %d", c.PageDefaultLimit)
	}
	if c.PageMaxLimit > 0 && c.PageMaxLimit < c.PageDefaultLimit {
		return fmt.Errorf("PAGE_MAX_LIMIT (%d) must be >= PAGE_DEFAULT_LIMIT (%d)", c.PageMaxLimit, c.PageDefaultLimit)
	}
	return nil
}
