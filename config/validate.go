package config

import (
	"fmt"
	"net/url"

	"github.com/jmgilman/copilot-mcp/errors"
)

// Validate checks that exactly one authentication mode is configured and that
// the numeric settings are usable. Failures are CodeInvalidConfig errors
// naming the offending field.
func (c *Config) Validate() error {
	gh := c.GitHub

	switch {
	case gh.Token != "" && gh.UsesApp():
		return invalid("github.token", "a token and GitHub App credentials are mutually exclusive")
	case gh.Token == "" && !gh.UsesApp():
		return invalid("github.token", "set GITHUB_TOKEN or the GitHub App credentials (GITHUB_APP_ID, GITHUB_APP_PRIVATE_KEY, GITHUB_APP_INSTALLATION_ID)")
	case gh.UsesApp():
		if gh.AppID == "" {
			return invalid("github.app_id", "required with GitHub App credentials")
		}
		if gh.PrivateKey == "" {
			return invalid("github.private_key", "required with GitHub App credentials")
		}
		if gh.InstallationID <= 0 {
			return invalid("github.installation_id", "must be a positive installation ID")
		}
	}

	if gh.BaseURL != "" {
		u, err := url.Parse(gh.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return invalid("github.base_url", fmt.Sprintf("%q is not an absolute URL", gh.BaseURL))
		}
	}
	if gh.Timeout < 0 {
		return invalid("github.timeout", "must not be negative")
	}
	if gh.RateLimit < 0 {
		return invalid("github.rate_limit", "must not be negative")
	}
	if gh.RateLimit > 0 && gh.Burst < 1 {
		return invalid("github.burst", "must be at least 1 when a rate limit is set")
	}

	if c.Retry.MaxAttempts < 1 {
		return invalid("retry.max_attempts", "must be at least 1")
	}
	if c.Retry.BaseBackoff <= 0 {
		return invalid("retry.base_backoff", "must be positive")
	}

	if _, err := c.LoggingOptions(); err != nil {
		return err
	}

	return nil
}

func invalid(field, reason string) error {
	err := errors.New(errors.CodeInvalidConfig, fmt.Sprintf("%s: %s", field, reason))
	return errors.WithContext(err, "field", field)
}
