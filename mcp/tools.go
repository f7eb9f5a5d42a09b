package mcp

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/jmgilman/copilot-mcp/copilot"
	"github.com/jmgilman/copilot-mcp/validate"
)

// CopilotService is the facade the tools call into. *copilot.Service
// satisfies it.
type CopilotService interface {
	GetOrganizationUsage(ctx context.Context, org string, params copilot.UsageParams) (json.RawMessage, error)
	GetEnterpriseUsage(ctx context.Context, enterprise string, params copilot.UsageParams) (json.RawMessage, error)
	GetOrganizationMetrics(ctx context.Context, org string, params copilot.UsageParams) (json.RawMessage, error)
	GetBilling(ctx context.Context, org string) (json.RawMessage, error)
	ListSeats(ctx context.Context, org string, params copilot.ListParams) (json.RawMessage, error)
	ListEnterpriseSeats(ctx context.Context, enterprise string, params copilot.ListParams) (json.RawMessage, error)
	AddSeats(ctx context.Context, org string, usernames []string) (json.RawMessage, error)
	RemoveSeats(ctx context.Context, org string, usernames []string) (json.RawMessage, error)
	GetSeatDetails(ctx context.Context, org, username string) (json.RawMessage, error)
}

var _ CopilotService = (*copilot.Service)(nil)

// fieldArguments names the tool arguments object in validation failures.
const fieldArguments = "arguments"

// tool is one MCP tool backed by a facade operation.
type tool struct {
	name        string
	title       string
	description string
	inputSchema map[string]any
	annotations *toolAnnotations
	call        func(ctx context.Context, svc CopilotService, args json.RawMessage) (json.RawMessage, error)
}

func (t *tool) describe() toolDescription {
	return toolDescription{
		Name:        t.name,
		Title:       t.title,
		Description: t.description,
		InputSchema: t.inputSchema,
		Annotations: t.annotations,
	}
}

// Argument shapes. Pagination fields are pointers so an absent value can be
// told apart from an explicit zero.

type usageArgs struct {
	Org        string `json:"org"`
	Enterprise string `json:"enterprise"`
	Since      string `json:"since"`
	Until      string `json:"until"`
	Page       *int   `json:"page"`
	PerPage    *int   `json:"per_page"`
}

func (a usageArgs) params() copilot.UsageParams {
	return copilot.UsageParams{
		Since:      a.Since,
		Until:      a.Until,
		ListParams: listParams(a.Page, a.PerPage),
	}
}

type listArgs struct {
	Org        string `json:"org"`
	Enterprise string `json:"enterprise"`
	Page       *int   `json:"page"`
	PerPage    *int   `json:"per_page"`
}

type orgArgs struct {
	Org string `json:"org"`
}

type seatsArgs struct {
	Org               string   `json:"org"`
	SelectedUsernames []string `json:"selected_usernames"`
}

type seatDetailsArgs struct {
	Org      string `json:"org"`
	Username string `json:"username"`
}

// listParams applies the default page and page size to absent values.
func listParams(page, perPage *int) copilot.ListParams {
	params := copilot.DefaultListParams()
	if page != nil {
		params.Page = *page
	}
	if perPage != nil {
		params.PerPage = *perPage
	}
	return params
}

// decodeArgs strictly decodes the tool arguments into v. Malformed arguments
// are reported as validation failures.
func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return validate.Failure(fieldArguments, err.Error())
	}
	return nil
}

// Input schema helpers.

func stringProperty(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func nameProperty(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
		"minLength":   1,
		"maxLength":   validate.MaxNameLength,
		"pattern":     `^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`,
	}
}

func dateProperty(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
		"pattern":     `^\d{4}-\d{2}-\d{2}$`,
	}
}

func paginationProperties() (map[string]any, map[string]any) {
	page := map[string]any{
		"type":        "integer",
		"description": "Page number to fetch",
		"minimum":     1,
		"default":     copilot.DefaultPage,
	}
	perPage := map[string]any{
		"type":        "integer",
		"description": "Results per page",
		"minimum":     validate.MinPerPage,
		"maximum":     validate.MaxPerPage,
		"default":     copilot.DefaultPerPage,
	}
	return page, perPage
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func usageSchema(scopeField, scopeDescription string) map[string]any {
	page, perPage := paginationProperties()
	return objectSchema(map[string]any{
		scopeField: nameProperty(scopeDescription),
		"since":    dateProperty("Only show usage on or after this day (YYYY-MM-DD)"),
		"until":    dateProperty("Only show usage on or before this day (YYYY-MM-DD)"),
		"page":     page,
		"per_page": perPage,
	}, scopeField)
}

func listSchema(scopeField, scopeDescription string) map[string]any {
	page, perPage := paginationProperties()
	return objectSchema(map[string]any{
		scopeField: nameProperty(scopeDescription),
		"page":     page,
		"per_page": perPage,
	}, scopeField)
}

func seatsSchema(description string) map[string]any {
	return objectSchema(map[string]any{
		"org": nameProperty("GitHub organization login"),
		"selected_usernames": map[string]any{
			"type":        "array",
			"description": description,
			"minItems":    1,
			"items":       stringProperty("GitHub username"),
		},
	}, "org", "selected_usernames")
}

func boolPtr(b bool) *bool {
	return &b
}

var (
	readOnly = &toolAnnotations{
		ReadOnlyHint:  boolPtr(true),
		OpenWorldHint: boolPtr(true),
	}
	additive = &toolAnnotations{
		ReadOnlyHint:    boolPtr(false),
		DestructiveHint: boolPtr(false),
		IdempotentHint:  boolPtr(true),
		OpenWorldHint:   boolPtr(true),
	}
	destructive = &toolAnnotations{
		ReadOnlyHint:    boolPtr(false),
		DestructiveHint: boolPtr(true),
		IdempotentHint:  boolPtr(true),
		OpenWorldHint:   boolPtr(true),
	}
)

// copilotTools returns the tool catalog in tools/list order.
func copilotTools() []tool {
	return []tool{
		{
			name:        "get_copilot_usage",
			title:       "Get Copilot usage",
			description: "Get the daily GitHub Copilot usage summary (suggestions, acceptances, active users) for an organization.",
			inputSchema: usageSchema("org", "GitHub organization login"),
			annotations: readOnly,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args usageArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.GetOrganizationUsage(ctx, args.Org, args.params())
			},
		},
		{
			name:        "get_copilot_enterprise_usage",
			title:       "Get Copilot enterprise usage",
			description: "Get the daily GitHub Copilot usage summary across all organizations of an enterprise.",
			inputSchema: usageSchema("enterprise", "GitHub enterprise slug"),
			annotations: readOnly,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args usageArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.GetEnterpriseUsage(ctx, args.Enterprise, args.params())
			},
		},
		{
			name:        "get_copilot_metrics",
			title:       "Get Copilot metrics",
			description: "Get GitHub Copilot metrics (completions, chat, pull requests) per day for an organization.",
			inputSchema: usageSchema("org", "GitHub organization login"),
			annotations: readOnly,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args usageArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.GetOrganizationMetrics(ctx, args.Org, args.params())
			},
		},
		{
			name:        "get_copilot_billing",
			title:       "Get Copilot billing",
			description: "Get the GitHub Copilot seat breakdown and seat management settings of an organization.",
			inputSchema: objectSchema(map[string]any{"org": nameProperty("GitHub organization login")}, "org"),
			annotations: readOnly,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args orgArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.GetBilling(ctx, args.Org)
			},
		},
		{
			name:        "list_copilot_seats",
			title:       "List Copilot seats",
			description: "List the GitHub Copilot seat assignments of an organization, one page at a time.",
			inputSchema: listSchema("org", "GitHub organization login"),
			annotations: readOnly,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args listArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.ListSeats(ctx, args.Org, listParams(args.Page, args.PerPage))
			},
		},
		{
			name:        "list_copilot_enterprise_seats",
			title:       "List Copilot enterprise seats",
			description: "List the GitHub Copilot seat assignments across an enterprise, one page at a time.",
			inputSchema: listSchema("enterprise", "GitHub enterprise slug"),
			annotations: readOnly,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args listArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.ListEnterpriseSeats(ctx, args.Enterprise, listParams(args.Page, args.PerPage))
			},
		},
		{
			name:        "add_copilot_seats",
			title:       "Add Copilot seats",
			description: "Assign GitHub Copilot seats to users of an organization. Every username must be valid or no seat is assigned.",
			inputSchema: seatsSchema("Usernames to assign a seat to"),
			annotations: additive,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args seatsArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.AddSeats(ctx, args.Org, args.SelectedUsernames)
			},
		},
		{
			name:        "remove_copilot_seats",
			title:       "Remove Copilot seats",
			description: "Cancel the GitHub Copilot seats of users of an organization. Every username must be valid or no seat is cancelled.",
			inputSchema: seatsSchema("Usernames whose seat is cancelled"),
			annotations: destructive,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args seatsArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.RemoveSeats(ctx, args.Org, args.SelectedUsernames)
			},
		},
		{
			name:        "get_copilot_seat_details",
			title:       "Get Copilot seat details",
			description: "Get the GitHub Copilot seat assigned to one member of an organization, including last activity.",
			inputSchema: objectSchema(map[string]any{
				"org":      nameProperty("GitHub organization login"),
				"username": stringProperty("GitHub username, optionally with an IdP suffix such as octocat_acme"),
			}, "org", "username"),
			annotations: readOnly,
			call: func(ctx context.Context, svc CopilotService, raw json.RawMessage) (json.RawMessage, error) {
				var args seatDetailsArgs
				if err := decodeArgs(raw, &args); err != nil {
					return nil, err
				}
				return svc.GetSeatDetails(ctx, args.Org, args.Username)
			},
		},
	}
}
