package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"baseconv/internal/domain"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "BASECONV_"

// Config holds runtime wiring options for building the app.
type Config struct {
	// Addr is the baseconvd listen address.
	Addr string `env:"ADDR" envDefault:":8080"`

	// Home is the state directory, e.g. $HOME/.baseconv.
	Home string `env:"HOME"`

	// Remote is a baseconvd base URL used for remote conversion.
	Remote string `env:"REMOTE"`

	// Clipboard is osc52, stdout, memory or file:<path>.
	Clipboard   string      `env:"CLIPBOARD" envDefault:"osc52"`
	DefaultFrom domain.Base `env:"DEFAULT_FROM" envDefault:"dec"`
	DefaultTo   domain.Base `env:"DEFAULT_TO" envDefault:"hex"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	Log LogConfig `envPrefix:"LOG_"`
}

// LogConfig selects the log handlers.
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`  // debug, info, warn, error
	Format string `env:"FORMAT" envDefault:"text"` // text or json
	File   string `env:"FILE"`                     // optional JSON log file, appended to
}

// LoadConfig reads Config from BASECONV_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
