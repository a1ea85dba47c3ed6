package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppName is the configuration directory name.
const AppName = "taskdesk"

// Config contains client configuration parameters.
type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	LogFile  string `env:"LOG_FILE"`
	DBPath   string `env:"DB_PATH"`
	API      API    `envPrefix:"API_"`
}

// API contains REST backend parameters.
type API struct {
	URL     string        `env:"URL" envDefault:"http://localhost:3000/api"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// NewConfig loads configuration from TASKDESK_* environment variables and
// fills file paths under the default config directory when unset.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "TASKDESK_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.API.Timeout <= 0 {
		return nil, fmt.Errorf("failed to parse config: api timeout must be positive, got %s", cfg.API.Timeout)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(DefaultDir(), "taskdesk.db")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(filepath.Dir(cfg.DBPath), "taskdesk.log")
	}
	return &cfg, nil
}

// DefaultDir uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}
