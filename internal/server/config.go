package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of the environment variables read by LoadConfig.
const EnvPrefix = "TFSCAFFOLD"

// Config holds the HTTP server settings.
type Config struct {
	// Addr is the listen address (TFSCAFFOLD_ADDR).
	Addr string `envconfig:"ADDR"`

	// ReadTimeout bounds reading a request including its body.
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT"`

	// WriteTimeout bounds handling a request and writing the response.
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`

	// MaxBodyBytes limits the size of request bodies.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES"`

	// SequentialRendering renders artifacts one at a time.
	SequentialRendering bool `envconfig:"SEQUENTIAL_RENDERING"`
}

// DefaultConfig returns the configuration used when no variable is set.
// LoadConfig starts from it, so variables only override single fields.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}

// LoadConfig reads the configuration from TFSCAFFOLD_* environment variables,
// falling back to defaults for unset variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("read timeout must be positive, got %s", c.ReadTimeout))
	}
	if c.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("write timeout must be positive, got %s", c.WriteTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes))
	}
	return errors.Join(errs...)
}
