package sdk

import (
	"context"
	"crypto/rsa"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v67/github"

	"github.com/jmgilman/copilot-mcp/errors"
)

const (
	// appJWTLifetime stays under the ten minute maximum GitHub accepts.
	appJWTLifetime = 9 * time.Minute

	// appJWTBackdate absorbs clock drift between us and GitHub.
	appJWTBackdate = time.Minute

	// tokenRefreshWindow is how long before expiry a cached installation
	// token is replaced.
	tokenRefreshWindow = time.Minute
)

// AppCredentials identifies a GitHub App installation.
type AppCredentials struct {
	// AppID is the numeric GitHub App ID or its client ID.
	AppID string

	// PrivateKey is the PEM-encoded RSA private key of the app.
	PrivateKey []byte

	// InstallationID is the installation the provider acts as.
	InstallationID int64
}

func (c AppCredentials) validate() error {
	switch {
	case c.AppID == "":
		err := errors.New(errors.CodeInvalidInput, "app ID cannot be empty")
		return errors.WithContext(err, "field", "app_id")
	case len(c.PrivateKey) == 0:
		err := errors.New(errors.CodeInvalidInput, "app private key cannot be empty")
		return errors.WithContext(err, "field", "private_key")
	case c.InstallationID <= 0:
		err := errors.Newf(errors.CodeInvalidInput, "installation ID must be positive, got %d", c.InstallationID)
		return errors.WithContext(err, "field", "installation_id")
	}
	return nil
}

// appTransport authenticates requests as the GitHub App itself using a
// short-lived RS256 JWT.
type appTransport struct {
	base  http.RoundTripper
	appID string
	key   *rsa.PrivateKey
	now   func() time.Time
}

func (t *appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    t.appID,
		IssuedAt:  jwt.NewNumericDate(now.Add(-appJWTBackdate)),
		ExpiresAt: jwt.NewNumericDate(now.Add(appJWTLifetime)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.key)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to sign GitHub App JWT")
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+signed)
	return t.base.RoundTrip(clone)
}

// installationTransport authenticates requests with an installation access
// token, exchanging a new one when the cached token is about to expire.
type installationTransport struct {
	base           http.RoundTripper
	apps           *github.Client
	installationID int64
	now            func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newInstallationTransport(base http.RoundTripper, creds AppCredentials, baseURL string) (*installationTransport, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(creds.PrivateKey)
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeInvalidInput, "failed to parse GitHub App private key")
		return nil, errors.WithContext(wrapped, "field", "private_key")
	}

	apps := github.NewClient(&http.Client{
		Transport: &appTransport{base: base, appID: creds.AppID, key: key, now: time.Now},
	})
	if baseURL != "" {
		if err := setBaseURL(apps, baseURL); err != nil {
			return nil, err
		}
	}

	return &installationTransport{
		base:           base,
		apps:           apps,
		installationID: creds.InstallationID,
		now:            time.Now,
	}, nil
}

func (t *installationTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.installationToken(req.Context())
	if err != nil {
		return nil, err
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(clone)
}

func (t *installationTransport) installationToken(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && t.now().Before(t.expiresAt.Add(-tokenRefreshWindow)) {
		return t.token, nil
	}

	tok, resp, err := t.apps.Apps.CreateInstallationToken(ctx, t.installationID, nil)
	if err != nil {
		return "", wrapError(err, resp, "failed to create installation token")
	}

	t.token = tok.GetToken()
	t.expiresAt = tok.GetExpiresAt().Time
	return t.token, nil
}
