package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/copilot-mcp/errors"
)

// Environment variable names.
const (
	EnvToken          = "GITHUB_TOKEN"
	EnvAppID          = "GITHUB_APP_ID"
	EnvPrivateKey     = "GITHUB_APP_PRIVATE_KEY"
	EnvPrivateKeyPath = "GITHUB_APP_PRIVATE_KEY_PATH"
	EnvInstallationID = "GITHUB_APP_INSTALLATION_ID"
	EnvBaseURL        = "GITHUB_API_URL"
	EnvTimeout        = "GITHUB_TIMEOUT"
	EnvRateLimit      = "GITHUB_RATE_LIMIT"
	EnvMaxAttempts    = "COPILOT_MCP_MAX_ATTEMPTS"
	EnvBaseBackoff    = "COPILOT_MCP_BASE_BACKOFF"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
)

// Load reads configuration from the YAML file at path, if path is not empty,
// then applies environment overrides and resolves the App private key file.
// The result is not validated; call Validate.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
			return nil, errors.WithContext(wrapped, "path", path)
		}

		expanded := os.Expand(string(data), func(key string) string {
			v, _ := lookup(key)
			return v
		})

		dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config file")
			return nil, errors.WithContext(wrapped, "path", path)
		}
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	if cfg.GitHub.PrivateKey == "" && cfg.GitHub.PrivateKeyPath != "" {
		key, err := os.ReadFile(cfg.GitHub.PrivateKeyPath)
		if err != nil {
			wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "failed to read GitHub App private key")
			return nil, errors.WithContext(wrapped, "field", "github.private_key_path")
		}
		cfg.GitHub.PrivateKey = string(key)
	}

	return cfg, nil
}

// applyEnv overlays every set, non-empty environment variable onto cfg.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	strs := []struct {
		env string
		dst *string
	}{
		{EnvToken, &cfg.GitHub.Token},
		{EnvAppID, &cfg.GitHub.AppID},
		{EnvPrivateKeyPath, &cfg.GitHub.PrivateKeyPath},
		{EnvBaseURL, &cfg.GitHub.BaseURL},
		{EnvLogLevel, &cfg.Logging.Level},
		{EnvLogFormat, &cfg.Logging.Format},
	}
	for _, s := range strs {
		if v, ok := get(s.env); ok {
			*s.dst = v
		}
	}

	// PEM keys are multi-line; keep them byte for byte.
	if v, ok := lookup(EnvPrivateKey); ok && strings.TrimSpace(v) != "" {
		cfg.GitHub.PrivateKey = v
	}

	if v, ok := get(EnvInstallationID); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return envError(EnvInstallationID, v, err)
		}
		cfg.GitHub.InstallationID = id
	}

	if v, ok := get(EnvRateLimit); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvRateLimit, v, err)
		}
		cfg.GitHub.RateLimit = rps
	}

	if v, ok := get(EnvMaxAttempts); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvMaxAttempts, v, err)
		}
		cfg.Retry.MaxAttempts = n
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{EnvTimeout, &cfg.GitHub.Timeout},
		{EnvBaseBackoff, &cfg.Retry.BaseBackoff},
	}
	for _, d := range durations {
		if v, ok := get(d.env); ok {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return envError(d.env, v, err)
			}
			*d.dst = parsed
		}
	}

	return nil
}

func envError(name, value string, err error) error {
	wrapped := errors.Wrap(err, errors.CodeInvalidConfig, fmt.Sprintf("invalid value %q for %s", value, name))
	return errors.WithContext(wrapped, "field", name)
}
