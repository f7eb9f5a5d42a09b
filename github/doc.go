// Package github defines the contract of the GitHub REST collaborator that the
// Copilot administration service calls into.
//
// # Architecture
//
// The package is split along the same lines as the rest of the module:
//
//  1. Provider, the interface the copilot service depends on
//  2. providers/sdk, the go-github implementation with token or GitHub App
//     authentication, an optional client-side rate limiter and a base URL
//     override for GitHub Enterprise Server
//  3. mocks, a moq-generated ProviderMock for tests
//
// Provider methods return response bodies as json.RawMessage. Nothing in this
// layer reshapes GitHub's data; the MCP tools forward it verbatim.
//
// # Errors
//
// Every provider failure is an *UpstreamError. It records what the response
// offered: the HTTP status (zero when no response arrived), the headers and
// the decoded body. Classification into UNAUTHORIZED, FORBIDDEN and the other
// kinds happens later in the classify package, which only needs the status
// and the x-ratelimit-reset header.
//
// # Usage
//
//	provider, err := sdk.NewSDKProvider(
//	    sdk.WithToken(os.Getenv("GITHUB_TOKEN")),
//	    sdk.WithRateLimit(10, 1),
//	)
//	if err != nil {
//	    return err
//	}
//
//	body, err := provider.GetBilling(ctx, "octo-org")
//	if err != nil {
//	    var upstream *github.UpstreamError
//	    if errors.As(err, &upstream) {
//	        log.Printf("GitHub answered %d", upstream.StatusCode)
//	    }
//	    return err
//	}
//
// Dates passed in UsageOptions use DateLayout (YYYY-MM-DD).
package github
