package mocks_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/copilot-mcp/copilot"
	"github.com/jmgilman/copilot-mcp/github"
	"github.com/jmgilman/copilot-mcp/github/mocks"
)

// Example test showing how to use the ProviderMock
func TestExampleUsingMock(t *testing.T) {
	ctx := context.Background()

	// Create and configure mock provider
	mock := &mocks.ProviderMock{
		ListSeatsFunc: func(ctx context.Context, org string, opts github.ListOptions) (json.RawMessage, error) {
			return json.RawMessage(`{"total_seats":1,"seats":[{"assignee":{"login":"octocat"}}]}`), nil
		},
	}

	// Use the mock
	svc := copilot.NewService(mock)
	seats, err := svc.ListSeats(ctx, "octo-org", copilot.DefaultListParams())

	// Assert behavior
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_seats":1,"seats":[{"assignee":{"login":"octocat"}}]}`, string(seats))
	require.Len(t, mock.ListSeatsCalls(), 1)
	assert.Equal(t, "octo-org", mock.ListSeatsCalls()[0].Org)
	assert.Equal(t, copilot.DefaultPerPage, mock.ListSeatsCalls()[0].Opts.PerPage)
}
