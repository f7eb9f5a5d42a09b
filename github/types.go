package github

// ListOptions holds the pagination parameters shared by list endpoints.
// Zero values are omitted from the query string.
type ListOptions struct {
	Page    int `json:"page,omitempty"     url:"page,omitempty"`
	PerPage int `json:"per_page,omitempty" url:"per_page,omitempty"`
}

// UsageOptions configures the usage and metrics endpoints. Since and Until
// are YYYY-MM-DD dates; empty values let GitHub apply its default window.
type UsageOptions struct {
	Since string `json:"since,omitempty" url:"since,omitempty"`
	Until string `json:"until,omitempty" url:"until,omitempty"`

	ListOptions
}

// SelectedUsers is the request body of the seat assignment and cancellation
// endpoints.
type SelectedUsers struct {
	SelectedUsernames []string `json:"selected_usernames"`
}
