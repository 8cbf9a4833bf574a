package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains application configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	Backend  Backend  `envPrefix:"BACKEND_"`
	Auth     Auth     `envPrefix:"AUTH_"`
	Storage  Storage  `envPrefix:"STORAGE_"`
	Database Database `envPrefix:"DATABASE_"`
	Members  Members  `envPrefix:"MEMBERS_"`
}

// Backend contains connection parameters of the hosted backend.
type Backend struct {
	URL        string        `env:"URL,notEmpty"`
	AnonKey    string        `env:"ANON_KEY,notEmpty"`
	JWTSecret  string        `env:"JWT_SECRET"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
	CACertFile string        `env:"CA_CERT_FILE"`
}

// Auth contains session lifecycle parameters.
type Auth struct {
	AutoRefresh     bool          `env:"AUTO_REFRESH" envDefault:"true"`
	RefreshMargin   time.Duration `env:"REFRESH_MARGIN" envDefault:"60s"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30s"`
}

// Storage contains local session persistence parameters.
type Storage struct {
	Path     string `env:"PATH"`
	InMemory bool   `env:"IN_MEMORY" envDefault:"false"`
}

// Database contains direct database connection parameters.
// An empty DSN keeps all data access on the REST gateway.
type Database struct {
	DSN string `env:"DSN"`
}

// Members contains member list caching parameters.
type Members struct {
	StaleTime time.Duration `env:"STALE_TIME" envDefault:"30s"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Dir returns the directory used for persisted state.
func (s Storage) Dir() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}

	return filepath.Join(base, "scheduleapp"), nil
}

// DirectDatabase reports whether data access should bypass the REST gateway.
func (c *Config) DirectDatabase() bool {
	return c.Database.DSN != ""
}
