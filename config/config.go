// Package config loads middleware and logging knobs for torch binaries
// from a YAML file with environment variable overrides, and can watch the
// file for changes. The dispatch core itself consumes plain values; this
// package is glue for executables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/torchweb/torch/logger"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" or "1m30s". A bare integer is read as seconds.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\" or an integer of seconds")
	}
	*d = Duration(time.Duration(n) * time.Second)
	return nil
}

// Config holds the tunable knobs for a torch application.
type Config struct {
	// RateLimitPermits caps concurrent in-flight requests.
	RateLimitPermits int `yaml:"rate_limit_permits"`
	// ThrottleRPS is the sustained requests-per-second budget; 0 disables.
	ThrottleRPS float64 `yaml:"throttle_rps"`
	// Timeout is the per-request deadline.
	Timeout Duration `yaml:"timeout"`
	// MaxBodyBytes caps the request body size.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// ContentSecurityPolicy overrides the default CSP; empty keeps it.
	ContentSecurityPolicy string `yaml:"content_security_policy"`
	// AllowOrigin is the CORS origin header value.
	AllowOrigin string `yaml:"allow_origin"`

	Sentry logger.SentryConfig `yaml:"sentry"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		RateLimitPermits: 100,
		Timeout:          Duration(30 * time.Second),
		MaxBodyBytes:     1 << 20,
		AllowOrigin:      "*",
	}
}

// Load reads a YAML config file over the defaults and applies environment
// overrides. A missing file is not an error; only the environment is
// applied then.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to env overrides.
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from TORCH_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("TORCH_RATE_LIMIT_PERMITS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TORCH_RATE_LIMIT_PERMITS: %w", err)
		}
		c.RateLimitPermits = n
	}
	if v := os.Getenv("TORCH_THROTTLE_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("TORCH_THROTTLE_RPS: %w", err)
		}
		c.ThrottleRPS = f
	}
	if v := os.Getenv("TORCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TORCH_TIMEOUT: %w", err)
		}
		c.Timeout = Duration(d)
	}
	if v := os.Getenv("TORCH_MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TORCH_MAX_BODY_BYTES: %w", err)
		}
		c.MaxBodyBytes = n
	}
	if v := os.Getenv("TORCH_ALLOW_ORIGIN"); v != "" {
		c.AllowOrigin = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		c.Sentry.DSN = v
	}
	if v := os.Getenv("SENTRY_ENVIRONMENT"); v != "" {
		c.Sentry.Environment = v
	}
	return nil
}
