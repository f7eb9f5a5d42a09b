package github

import (
	"context"
	"encoding/json"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/provider.go -pkg mocks . Provider

// Provider is the GitHub REST collaborator for Copilot administration.
//
// Implementations own authentication (token or GitHub App) and transport;
// callers see only these operations. Every method returns the response body
// exactly as GitHub sent it so higher layers can forward it without
// reshaping. Failures are *UpstreamError values carrying whatever the
// response offered (status, headers, body).
//
// Example using the SDK provider:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	seats, err := provider.ListSeats(ctx, "octo-org", github.ListOptions{Page: 1, PerPage: 50})
type Provider interface {
	// Usage and metrics

	// GetOrganizationUsage returns the daily Copilot usage summary for an
	// organization (GET /orgs/{org}/copilot/usage).
	GetOrganizationUsage(ctx context.Context, org string, opts UsageOptions) (json.RawMessage, error)

	// GetEnterpriseUsage returns the daily Copilot usage summary for an
	// enterprise (GET /enterprises/{enterprise}/copilot/usage).
	GetEnterpriseUsage(ctx context.Context, enterprise string, opts UsageOptions) (json.RawMessage, error)

	// GetOrganizationMetrics returns Copilot metrics for an organization
	// (GET /orgs/{org}/copilot/metrics).
	GetOrganizationMetrics(ctx context.Context, org string, opts UsageOptions) (json.RawMessage, error)

	// Billing and seats

	// GetBilling returns the Copilot seat breakdown and settings of an
	// organization (GET /orgs/{org}/copilot/billing).
	GetBilling(ctx context.Context, org string) (json.RawMessage, error)

	// ListSeats lists Copilot seat assignments of an organization
	// (GET /orgs/{org}/copilot/billing/seats).
	ListSeats(ctx context.Context, org string, opts ListOptions) (json.RawMessage, error)

	// ListEnterpriseSeats lists Copilot seat assignments across an enterprise
	// (GET /enterprises/{enterprise}/copilot/billing/seats).
	ListEnterpriseSeats(ctx context.Context, enterprise string, opts ListOptions) (json.RawMessage, error)

	// AddSeats assigns Copilot seats to users
	// (POST /orgs/{org}/copilot/billing/selected_users).
	AddSeats(ctx context.Context, org string, usernames []string) (json.RawMessage, error)

	// CancelSeats cancels pending or active Copilot seats of users
	// (DELETE /orgs/{org}/copilot/billing/selected_users).
	CancelSeats(ctx context.Context, org string, usernames []string) (json.RawMessage, error)

	// GetSeatDetails returns the Copilot seat of one organization member
	// (GET /orgs/{org}/members/{username}/copilot).
	GetSeatDetails(ctx context.Context, org, username string) (json.RawMessage, error)
}
