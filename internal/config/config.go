// Package config loads the gateway configuration from an optional YAML file
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no path is given and the file exists.
const DefaultFile = "wolfpad.yaml"

// ErrMissingAPIKey is returned by Validate when no completion credential is set.
var ErrMissingAPIKey = errors.New("API key is not configured (set API_KEY)")

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	AI        AIConfig        `yaml:"ai"`
	Platform  PlatformConfig  `yaml:"platform"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Timeout bounds one upstream completion call.
	Timeout time.Duration `yaml:"timeout"`
	// TrustProxyHeaders keys clients on X-Forwarded-For / X-Real-IP instead
	// of the socket peer.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

type AIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
	// BaseURL overrides the completion service endpoint.
	BaseURL string `yaml:"base_url"`
}

// PlatformConfig points at the hosted data platform. URL and Key are set together.
type PlatformConfig struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

// Enabled reports whether the platform is configured.
func (p PlatformConfig) Enabled() bool {
	return p.URL != "" && p.Key != ""
}

// RateLimitConfig bounds requests per client. Zero disables limiting; an empty
// RedisURL keeps the counters in memory.
type RateLimitConfig struct {
	RequestsPerWindow int           `yaml:"requests_per_window"`
	Window            time.Duration `yaml:"window"`
	RedisURL          string        `yaml:"redis_url"`
}

// Enabled reports whether rate limiting is on.
func (r RateLimitConfig) Enabled() bool {
	return r.RequestsPerWindow > 0
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:    ":8080",
			Timeout: 60 * time.Second,
		},
		AI: AIConfig{
			Model: "gemini-2.5-flash",
		},
		RateLimit: RateLimitConfig{
			Window: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path (or DefaultFile when path is empty and present) over the
// defaults, then applies environment overrides. It does not validate.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}

	setString(&c.AI.APIKey, "API_KEY", "GEMINI_API_KEY")
	setString(&c.AI.Model, "WOLFPAD_MODEL")
	setString(&c.AI.BaseURL, "WOLFPAD_AI_BASE_URL")
	setString(&c.Server.Addr, "WOLFPAD_ADDR")
	setString(&c.Platform.URL, "SUPABASE_URL")
	setString(&c.Platform.Key, "SUPABASE_KEY")
	setString(&c.RateLimit.RedisURL, "REDIS_URL")
	setString(&c.Logging.Level, "WOLFPAD_LOG_LEVEL")
	setString(&c.Logging.Format, "WOLFPAD_LOG_FORMAT")

	if v := getenv("WOLFPAD_TIMEOUT"); v != "" {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("invalid WOLFPAD_TIMEOUT: %w", err)
		}
		c.Server.Timeout = d
	}
	if v := getenv("WOLFPAD_TRUST_PROXY_HEADERS"); v != "" {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("invalid WOLFPAD_TRUST_PROXY_HEADERS: %w", err)
		}
		c.Server.TrustProxyHeaders = b
	}
	if v := getenv("WOLFPAD_RATE_LIMIT"); v != "" {
		n, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("invalid WOLFPAD_RATE_LIMIT: %w", err)
		}
		c.RateLimit.RequestsPerWindow = n
	}
	return nil
}

// Validate reports configuration that cannot serve requests.
func (c Config) Validate() error {
	var errs []error
	if c.AI.APIKey == "" {
		errs = append(errs, ErrMissingAPIKey)
	}
	if (c.Platform.URL == "") != (c.Platform.Key == "") {
		errs = append(errs, errors.New("data platform url and key must be set together"))
	}
	if c.Server.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("server timeout must be positive, got %s", c.Server.Timeout))
	}
	if c.RateLimit.Enabled() && c.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("rate limit window must be positive, got %s", c.RateLimit.Window))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (want text or json)", c.Logging.Format))
	}
	return errors.Join(errs...)
}
