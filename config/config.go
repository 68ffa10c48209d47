package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config file path
const EnvPath = "SMARTCALC_CONFIG"

// DefaultPath config file read when EnvPath is unset
const DefaultPath = "config.yaml"

// Config application configuration
type Config struct {
	HTTPAddr          string        `yaml:"http_addr"`           // listen address of the HTTP API
	RatesURL          string        `yaml:"rates_url"`           // exchange rate endpoint, base code is appended
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`       // bound on the startup rate fetch
	RequestsPerSecond float64       `yaml:"requests_per_second"` // HTTP rate limit, 0 disables
	Burst             int           `yaml:"burst"`               // HTTP rate limit burst
	LogLevel          string        `yaml:"log_level"`           // debug, info, warn or error
}

// Default the configuration used for anything a file leaves out
func Default() Config {
	return Config{
		HTTPAddr:          ":8080",
		RatesURL:          "https://open.er-api.com/v6/latest",
		FetchTimeout:      3 * time.Second,
		RequestsPerSecond: 50,
		Burst:             100,
		LogLevel:          "info",
	}
}

// Path the config file location, honouring EnvPath
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over Default. A missing file yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config [%v]: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config [%v]: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings no component can run with
func (c Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %v", c.FetchTimeout)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative, got %v", c.RequestsPerSecond)
	}
	if c.RequestsPerSecond > 0 && c.Burst <= 0 {
		return fmt.Errorf("burst must be positive when rate limiting, got %v", c.Burst)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
