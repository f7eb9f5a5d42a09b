// Package sdk provides a GitHub provider implementation using the go-github SDK.
//
// This package implements the github.Provider interface on top of
// github.com/google/go-github/v67. Requests are built and sent through the
// SDK client so authentication, user agent and rate limit bookkeeping come
// from go-github, while response bodies are decoded into json.RawMessage and
// handed back untouched.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-github/v67/github"
	"github.com/google/go-querystring/query"
	"golang.org/x/time/rate"

	"github.com/jmgilman/copilot-mcp/errors"
	gh "github.com/jmgilman/copilot-mcp/github"
)

// SDKProvider implements github.Provider using the go-github SDK.
type SDKProvider struct {
	client  *github.Client
	limiter *rate.Limiter
}

// NewSDKProvider creates a provider using the GitHub SDK.
//
// Exactly one way of authenticating is required: a token, GitHub App
// credentials, or a preconfigured client.
//
// Example with token authentication:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//
// Example with a GitHub App installation on GitHub Enterprise Server:
//
//	provider, err := sdk.NewSDKProvider(
//	    sdk.WithAppCredentials(sdk.AppCredentials{
//	        AppID:          "123456",
//	        PrivateKey:     pemBytes,
//	        InstallationID: 7890,
//	    }),
//	    sdk.WithBaseURL("https://ghe.example.com/api/v3/"),
//	)
func NewSDKProvider(opts ...Option) (*SDKProvider, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	client := cfg.client
	if client == nil {
		var err error
		client, err = cfg.buildClient()
		if err != nil {
			return nil, err
		}
	}

	return &SDKProvider{
		client:  client,
		limiter: cfg.limiter,
	}, nil
}

// config holds configuration for SDKProvider.
type config struct {
	client     *github.Client
	httpClient *http.Client
	token      string
	app        *AppCredentials
	baseURL    string
	limiter    *rate.Limiter
}

func (cfg *config) buildClient() (*github.Client, error) {
	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	var client *github.Client
	switch {
	case cfg.token != "" && cfg.app != nil:
		err := errors.New(errors.CodeInvalidInput, "token and app credentials are mutually exclusive")
		return nil, errors.WithContext(err, "field", "token or app credentials")
	case cfg.token != "":
		client = github.NewClient(httpClient).WithAuthToken(cfg.token)
	case cfg.app != nil:
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		transport, err := newInstallationTransport(base, *cfg.app, cfg.baseURL)
		if err != nil {
			return nil, err
		}
		authed := *httpClient
		authed.Transport = transport
		client = github.NewClient(&authed)
	default:
		err := errors.New(errors.CodeInvalidInput, "either token, app credentials or client must be provided")
		return nil, errors.WithContext(err, "field", "token, app credentials or client")
	}

	if cfg.baseURL != "" {
		if err := setBaseURL(client, cfg.baseURL); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// Option configures the SDK provider.
type Option func(*config) error

// WithToken sets the authentication token for the SDK provider.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithAppCredentials authenticates as a GitHub App installation. The provider
// signs an app JWT and exchanges it for installation tokens on demand.
func WithAppCredentials(creds AppCredentials) Option {
	return func(cfg *config) error {
		if err := creds.validate(); err != nil {
			return err
		}
		cfg.app = &creds
		return nil
	}
}

// WithClient sets a custom GitHub client for the SDK provider.
// This allows full control over the HTTP client configuration,
// authentication, and other advanced settings. WithToken, WithAppCredentials,
// WithBaseURL and WithHTTPClient are ignored when a client is supplied.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithHTTPClient sets the HTTP client used underneath go-github, for example
// to configure timeouts or a proxy.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) error {
		if httpClient == nil {
			err := errors.New(errors.CodeInvalidInput, "http client cannot be nil")
			return errors.WithContext(err, "field", "http_client")
		}
		cfg.httpClient = httpClient
		return nil
	}
}

// WithBaseURL points the provider at a different REST API root, such as
// https://ghe.example.com/api/v3/ for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			err := errors.New(errors.CodeInvalidInput, "base URL cannot be empty")
			return errors.WithContext(err, "field", "base_url")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithRateLimit throttles outgoing requests to rps requests per second with
// the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(cfg *config) error {
		if rps <= 0 || burst < 1 {
			err := errors.Newf(errors.CodeInvalidInput, "rate limit must be positive, got %v/s with burst %d", rps, burst)
			return errors.WithContext(err, "field", "rate_limit")
		}
		cfg.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

// GetOrganizationUsage returns the Copilot usage summary of an organization.
func (s *SDKProvider) GetOrganizationUsage(ctx context.Context, org string, opts gh.UsageOptions) (json.RawMessage, error) {
	path, err := withQuery(fmt.Sprintf("orgs/%s/copilot/usage", url.PathEscape(org)), opts)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodGet, path, nil, "failed to get Copilot usage for organization")
}

// GetEnterpriseUsage returns the Copilot usage summary of an enterprise.
func (s *SDKProvider) GetEnterpriseUsage(ctx context.Context, enterprise string, opts gh.UsageOptions) (json.RawMessage, error) {
	path, err := withQuery(fmt.Sprintf("enterprises/%s/copilot/usage", url.PathEscape(enterprise)), opts)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodGet, path, nil, "failed to get Copilot usage for enterprise")
}

// GetOrganizationMetrics returns the Copilot metrics of an organization.
func (s *SDKProvider) GetOrganizationMetrics(ctx context.Context, org string, opts gh.UsageOptions) (json.RawMessage, error) {
	path, err := withQuery(fmt.Sprintf("orgs/%s/copilot/metrics", url.PathEscape(org)), opts)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodGet, path, nil, "failed to get Copilot metrics for organization")
}

// GetBilling returns the Copilot billing summary of an organization.
func (s *SDKProvider) GetBilling(ctx context.Context, org string) (json.RawMessage, error) {
	path := fmt.Sprintf("orgs/%s/copilot/billing", url.PathEscape(org))
	return s.do(ctx, http.MethodGet, path, nil, "failed to get Copilot billing")
}

// ListSeats lists the Copilot seats of an organization.
func (s *SDKProvider) ListSeats(ctx context.Context, org string, opts gh.ListOptions) (json.RawMessage, error) {
	path, err := withQuery(fmt.Sprintf("orgs/%s/copilot/billing/seats", url.PathEscape(org)), opts)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodGet, path, nil, "failed to list Copilot seats")
}

// ListEnterpriseSeats lists the Copilot seats of an enterprise.
func (s *SDKProvider) ListEnterpriseSeats(ctx context.Context, enterprise string, opts gh.ListOptions) (json.RawMessage, error) {
	path, err := withQuery(fmt.Sprintf("enterprises/%s/copilot/billing/seats", url.PathEscape(enterprise)), opts)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodGet, path, nil, "failed to list Copilot seats for enterprise")
}

// AddSeats assigns Copilot seats to the given users.
func (s *SDKProvider) AddSeats(ctx context.Context, org string, usernames []string) (json.RawMessage, error) {
	path := fmt.Sprintf("orgs/%s/copilot/billing/selected_users", url.PathEscape(org))
	body := &gh.SelectedUsers{SelectedUsernames: usernames}
	return s.do(ctx, http.MethodPost, path, body, "failed to add Copilot seats")
}

// CancelSeats cancels the Copilot seats of the given users.
func (s *SDKProvider) CancelSeats(ctx context.Context, org string, usernames []string) (json.RawMessage, error) {
	path := fmt.Sprintf("orgs/%s/copilot/billing/selected_users", url.PathEscape(org))
	body := &gh.SelectedUsers{SelectedUsernames: usernames}
	return s.do(ctx, http.MethodDelete, path, body, "failed to cancel Copilot seats")
}

// GetSeatDetails returns the Copilot seat of an organization member.
func (s *SDKProvider) GetSeatDetails(ctx context.Context, org, username string) (json.RawMessage, error) {
	path := fmt.Sprintf("orgs/%s/members/%s/copilot", url.PathEscape(org), url.PathEscape(username))
	return s.do(ctx, http.MethodGet, path, nil, "failed to get Copilot seat details")
}

// Client returns the underlying go-github client.
// This is an escape hatch for endpoints the provider does not cover.
func (s *SDKProvider) Client() *github.Client {
	return s.client
}

// do sends one request and returns the raw response body.
func (s *SDKProvider) do(ctx context.Context, method, path string, body interface{}, message string) (json.RawMessage, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			// Wait refuses up front when the next token lands after the deadline.
			return nil, errors.Wrap(context.DeadlineExceeded, errors.CodeInternal, err.Error())
		}
	}

	req, err := s.client.NewRequest(method, path, body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to build request")
	}

	var payload json.RawMessage
	resp, err := s.client.Do(ctx, req, &payload)
	if err != nil {
		return nil, wrapError(err, resp, message)
	}

	return payload, nil
}

// wrapError converts a go-github failure into a *gh.UpstreamError.
func wrapError(err error, resp *github.Response, message string) error {
	if err == nil {
		return nil
	}

	// Failures raised inside our own transport (installation token exchange)
	// are already converted.
	var upstream *gh.UpstreamError
	if errors.As(err, &upstream) {
		return upstream
	}

	upstream = &gh.UpstreamError{
		Message: fmt.Sprintf("%s: %v", message, err),
		Err:     err,
	}
	if resp != nil && resp.Response != nil {
		upstream.StatusCode = resp.StatusCode
		upstream.Headers = gh.FlattenHeaders(resp.Header)
	}

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var ghErr *github.ErrorResponse
	switch {
	case errors.As(err, &rateErr):
		upstream.Message = fmt.Sprintf("%s: %s", message, rateErr.Message)
		upstream.Payload = marshalPayload(rateErr)
		if upstream.StatusCode == 0 {
			upstream.StatusCode = http.StatusForbidden
		}
		// go-github answers from its own bookkeeping, without a response,
		// while a known limit is still in effect.
		if _, ok := upstream.Header(gh.HeaderRateLimitReset); !ok && !rateErr.Rate.Reset.IsZero() {
			if upstream.Headers == nil {
				upstream.Headers = make(map[string]string, 1)
			}
			upstream.Headers[gh.HeaderRateLimitReset] = strconv.FormatInt(rateErr.Rate.Reset.Unix(), 10)
		}
	case errors.As(err, &abuseErr):
		upstream.Message = fmt.Sprintf("%s: %s", message, abuseErr.Message)
		upstream.Payload = marshalPayload(abuseErr)
	case errors.As(err, &ghErr):
		upstream.Message = fmt.Sprintf("%s: %s", message, ghErr.Message)
		upstream.Payload = marshalPayload(ghErr)
	}

	return upstream
}

func marshalPayload(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

// withQuery appends the URL-encoded form of opts to path.
func withQuery(path string, opts interface{}) (string, error) {
	values, err := query.Values(opts)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to encode query parameters")
	}
	if encoded := values.Encode(); encoded != "" {
		return path + "?" + encoded, nil
	}
	return path, nil
}

// setBaseURL points client at baseURL, adding the trailing slash go-github
// requires.
func setBaseURL(client *github.Client, baseURL string) error {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return errors.WithContext(errors.Wrap(err, errors.CodeInvalidInput, "invalid base URL"), "field", "base_url")
	}
	client.BaseURL = u
	return nil
}
