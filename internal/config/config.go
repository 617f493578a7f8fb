// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Environment variables read by Load
const (
	EnvLogLevel      = "CONSOLETEA_LOG_LEVEL"
	EnvLogFile       = "CONSOLETEA_LOG_FILE"
	EnvSizePoll      = "CONSOLETEA_SIZE_POLL"
	EnvFallbackWidth = "CONSOLETEA_FALLBACK_WIDTH"
	EnvOTLPEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName   = "OTEL_SERVICE_NAME"
)

// Defaults
const (
	DefaultLogLevel      = "info"
	DefaultSizePoll      = 50 * time.Millisecond
	DefaultFallbackWidth = 80
)

// MinSizePoll is the shortest terminal size polling interval accepted.
const MinSizePoll = 50 * time.Millisecond

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid config")

// Config holds settings shared by the example binaries.
type Config struct {
	LogLevel      string
	LogFile       string
	SizePoll      time.Duration
	FallbackWidth int
	OTLPEndpoint  string
	ServiceName   string
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		LogLevel:      DefaultLogLevel,
		SizePoll:      DefaultSizePoll,
		FallbackWidth: DefaultFallbackWidth,
	}
}

// Load reads the environment on top of Default and validates the result.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvSizePoll); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSizePoll, v, err))
		} else {
			cfg.SizePoll = d
		}
	}
	if v, ok := lookup(EnvFallbackWidth); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvFallbackWidth, v, err))
		} else {
			cfg.FallbackWidth = n
		}
	}
	if v, ok := lookup(EnvOTLPEndpoint); ok {
		cfg.OTLPEndpoint = v
	}
	if v, ok := lookup(EnvServiceName); ok {
		cfg.ServiceName = v
	}

	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	err := cfg.Validate()
	return cfg, err
}

// Validate checks that every field holds a usable value. A SizePoll below
// MinSizePoll is raised to the floor rather than rejected.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel))
	}
	if c.SizePoll <= 0 {
		errs = append(errs, fmt.Errorf("%w: size poll %v must be positive", ErrInvalid, c.SizePoll))
	} else if c.SizePoll < MinSizePoll {
		c.SizePoll = MinSizePoll
	}
	if c.FallbackWidth <= 0 {
		errs = append(errs, fmt.Errorf("%w: fallback width %d must be positive", ErrInvalid, c.FallbackWidth))
	}
	return errors.Join(errs...)
}
