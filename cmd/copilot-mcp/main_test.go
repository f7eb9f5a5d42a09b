package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/copilot-mcp/config"
	"github.com/jmgilman/copilot-mcp/errors"
)

// clearEnv blanks every variable the config loader reads so the host
// environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		config.EnvToken, config.EnvAppID, config.EnvPrivateKey, config.EnvPrivateKeyPath,
		config.EnvInstallationID, config.EnvBaseURL, config.EnvTimeout, config.EnvRateLimit,
		config.EnvMaxAttempts, config.EnvBaseBackoff, config.EnvLogLevel, config.EnvLogFormat,
	} {
		t.Setenv(name, "")
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "copilot-mcp dev\n", out.String())
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	t.Run("token with base url", func(t *testing.T) {
		t.Parallel()

		provider, err := newProvider(config.GitHubConfig{
			Token:     "ghp_test",
			BaseURL:   "https://ghe.example.com/api/v3",
			Timeout:   config.DefaultTimeout,
			RateLimit: 5,
			Burst:     1,
		})

		require.NoError(t, err)
		assert.Equal(t, "https://ghe.example.com/api/v3/", provider.Client().BaseURL.String())
	})

	t.Run("app with unparsable key", func(t *testing.T) {
		t.Parallel()

		_, err := newProvider(config.GitHubConfig{
			AppID:          "123",
			PrivateKey:     "not a key",
			InstallationID: 7,
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestServe_MissingCredentials(t *testing.T) {
	clearEnv(t)

	err := serve(context.Background(), &rootOptions{}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestServe_ToolCall(t *testing.T) {
	clearEnv(t)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orgs/octo-org/copilot/billing", r.URL.Path)
		assert.Equal(t, "Bearer ghp_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"seat_breakdown":{"total":3}}`))
	}))
	t.Cleanup(api.Close)

	path := filepath.Join(t.TempDir(), "copilot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("github:\n  token: ghp_test\n  base_url: "+api.URL+"\n"), 0o600))

	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":0,"method":"initialize","params":{"protocolVersion":"2025-11-25","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_copilot_billing","arguments":{"org":"octo-org"}}}`,
	}, "\n") + "\n"

	var stdout, stderr bytes.Buffer
	err := serve(context.Background(), &rootOptions{configPath: path, debug: true}, strings.NewReader(input), &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)

	var resp struct {
		ID     int `json:"id"`
		Result struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
			IsError bool `json:"isError"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.False(t, resp.Result.IsError)
	require.Len(t, resp.Result.Content, 1)
	assert.JSONEq(t, `{"seat_breakdown":{"total":3}}`, resp.Result.Content[0].Text)

	assert.Contains(t, stderr.String(), "serving MCP on stdio")
}

func TestServe_StopsOnCancel(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvToken, "ghp_test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A pipe that never delivers input; only cancellation can end serve.
	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = writer.Close()
		_ = reader.Close()
	})

	err = serve(ctx, &rootOptions{}, reader, &bytes.Buffer{}, &bytes.Buffer{})
	assert.NoError(t, err)
}
