package main

import (
	"net/http"

	"github.com/jmgilman/copilot-mcp/config"
	"github.com/jmgilman/copilot-mcp/github/providers/sdk"
)

// newProvider builds the go-github provider described by cfg. cfg must have
// passed Validate.
func newProvider(cfg config.GitHubConfig) (*sdk.SDKProvider, error) {
	return sdk.NewSDKProvider(providerOptions(cfg)...)
}

func providerOptions(cfg config.GitHubConfig) []sdk.Option {
	opts := []sdk.Option{
		sdk.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}

	if cfg.Token != "" {
		opts = append(opts, sdk.WithToken(cfg.Token))
	} else {
		opts = append(opts, sdk.WithAppCredentials(sdk.AppCredentials{
			AppID:          cfg.AppID,
			PrivateKey:     []byte(cfg.PrivateKey),
			InstallationID: cfg.InstallationID,
		}))
	}

	if cfg.BaseURL != "" {
		opts = append(opts, sdk.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, sdk.WithRateLimit(cfg.RateLimit, cfg.Burst))
	}

	return opts
}

func authMode(cfg config.GitHubConfig) string {
	if cfg.Token != "" {
		return "token"
	}
	return "github-app"
}
