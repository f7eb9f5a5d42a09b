// Package config loads the server configuration from an optional YAML file
// and the environment.
//
// The file may reference environment variables as ${VAR}. Environment
// variables listed below override file values when set and non-empty:
//
//	GITHUB_TOKEN                  github.token
//	GITHUB_APP_ID                 github.app_id
//	GITHUB_APP_PRIVATE_KEY        github.private_key
//	GITHUB_APP_PRIVATE_KEY_PATH   github.private_key_path
//	GITHUB_APP_INSTALLATION_ID    github.installation_id
//	GITHUB_API_URL                github.base_url
//	GITHUB_TIMEOUT                github.timeout
//	GITHUB_RATE_LIMIT             github.rate_limit
//	COPILOT_MCP_MAX_ATTEMPTS      retry.max_attempts
//	COPILOT_MCP_BASE_BACKOFF      retry.base_backoff
//	LOG_LEVEL                     logging.level
//	LOG_FORMAT                    logging.format
package config

import (
	"time"

	"github.com/jmgilman/copilot-mcp/logging"
	"github.com/jmgilman/copilot-mcp/retry"
)

// Defaults applied before the file and environment are read.
const (
	DefaultTimeout = 30 * time.Second
	DefaultBurst   = 1
)

// Config is the top-level configuration.
type Config struct {
	GitHub  GitHubConfig  `yaml:"github"`
	Retry   RetryConfig   `yaml:"retry"`
	Logging LoggingConfig `yaml:"logging"`
}

// GitHubConfig holds GitHub API access settings. Exactly one of Token or the
// App triple (AppID, PrivateKey, InstallationID) must be set.
type GitHubConfig struct {
	Token          string        `yaml:"token"`
	AppID          string        `yaml:"app_id"`
	PrivateKey     string        `yaml:"private_key"`
	PrivateKeyPath string        `yaml:"private_key_path"`
	InstallationID int64         `yaml:"installation_id"`
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	RateLimit      float64       `yaml:"rate_limit"` // requests per second, 0 = off
	Burst          int           `yaml:"burst"`
}

// UsesApp reports whether any GitHub App setting is present.
func (c GitHubConfig) UsesApp() bool {
	return c.AppID != "" || c.PrivateKey != "" || c.PrivateKeyPath != "" || c.InstallationID != 0
}

// RetryConfig holds the retry policy for GitHub requests.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseBackoff time.Duration `yaml:"base_backoff"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Timeout: DefaultTimeout,
			Burst:   DefaultBurst,
		},
		Retry: RetryConfig{
			MaxAttempts: retry.DefaultMaxAttempts,
			BaseBackoff: retry.DefaultBaseBackoff,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: string(logging.FormatText),
		},
	}
}

// RetryPolicy builds the retry policy described by the configuration.
func (c *Config) RetryPolicy(logger logging.Logger) retry.Policy {
	return retry.Policy{
		MaxAttempts: c.Retry.MaxAttempts,
		BaseBackoff: c.Retry.BaseBackoff,
		Logger:      logger,
	}
}

// LoggingOptions parses the logging section.
func (c *Config) LoggingOptions() (logging.Options, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return logging.Options{}, err
	}
	format, err := logging.ParseFormat(c.Logging.Format)
	if err != nil {
		return logging.Options{}, err
	}
	return logging.Options{Level: level, Format: format}, nil
}
