// Package config handles configuration loading and validation for catalogctl.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml values like "10s" decode.
type Duration time.Duration

// UnmarshalYAML decodes a duration string such as "10s" or "1m30s".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds the application configuration.
type Config struct {
	// APIURL is the base URL of the catalog API. Immutable for the
	// process lifetime once loaded.
	APIURL string `yaml:"api_url"`
	// PageSize is the number of products requested per list page.
	PageSize int `yaml:"page_size"`
	// Timeout bounds each HTTP request.
	Timeout Duration `yaml:"timeout"`
	// RateLimit is the maximum number of API requests per second.
	RateLimit float64 `yaml:"rate_limit"`
	// Pinned holds glob patterns matched against product category names
	// and slugs; matching products are highlighted in the list.
	Pinned []string `yaml:"pinned"`

	// DataDir is set by the caller, not from the config file.
	DataDir string `yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIURL:    "http://localhost:5000/api",
		PageSize:  10,
		Timeout:   Duration(10 * time.Second),
		RateLimit: 5,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir. A non-empty apiURL (from flag or environment) overrides
// the file value.
func Load(configPath, dataDir, apiURL string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.PageSize == 0 {
		c.PageSize = defaults.PageSize
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RateLimit == 0 {
		c.RateLimit = defaults.RateLimit
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.APIURL == "" {
		errs = errs.Append("api_url", fmt.Errorf("cannot be empty"))
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = errs.Append("api_url", fmt.Errorf("must be an absolute URL, got %q", c.APIURL))
	}

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("data directory cannot be empty"))
	}

	if c.PageSize < 1 {
		errs = errs.Append("page_size", fmt.Errorf("must be at least 1"))
	}

	if c.RateLimit <= 0 {
		errs = errs.Append("rate_limit", fmt.Errorf("must be greater than 0"))
	}

	for i, pattern := range c.Pinned {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("pinned[%d]", i), fmt.Errorf("invalid pattern %q", pattern))
		}
	}

	return errs.ToError()
}

// RequestTimeout returns the HTTP timeout as a time.Duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout)
}

// SessionFile returns the path to the persisted session JSON file.
func (c *Config) SessionFile() string {
	return filepath.Join(c.DataDir, "session.json")
}
