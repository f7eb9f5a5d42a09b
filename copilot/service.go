// Package copilot is the service facade for GitHub Copilot administration.
//
// Every operation runs the same pipeline: validate the arguments without
// touching the network, call the GitHub provider under the retry policy, and
// classify the final failure. Successful responses are returned exactly as
// GitHub sent them.
package copilot

import (
	"context"
	"encoding/json"

	"github.com/jmgilman/copilot-mcp/classify"
	"github.com/jmgilman/copilot-mcp/github"
	"github.com/jmgilman/copilot-mcp/logging"
	"github.com/jmgilman/copilot-mcp/retry"
	"github.com/jmgilman/copilot-mcp/validate"
)

const (
	// DefaultPage is the page requested when the caller gives none.
	DefaultPage = 1

	// DefaultPerPage is the page size requested when the caller gives none.
	DefaultPerPage = 50
)

// Date parameter names reported in validation failures.
const (
	FieldSince = "since"
	FieldUntil = "until"
)

// ListParams selects a page of a list endpoint.
type ListParams struct {
	Page    int
	PerPage int
}

// DefaultListParams returns the first page at the default page size.
func DefaultListParams() ListParams {
	return ListParams{Page: DefaultPage, PerPage: DefaultPerPage}
}

func (p ListParams) validate() error {
	return validate.Pagination(p.Page, p.PerPage)
}

func (p ListParams) options() github.ListOptions {
	return github.ListOptions{Page: p.Page, PerPage: p.PerPage}
}

// UsageParams filters the usage and metrics endpoints. Since and Until are
// optional YYYY-MM-DD dates.
type UsageParams struct {
	Since string
	Until string
	ListParams
}

func (p UsageParams) validate() error {
	if p.Since != "" {
		if err := validate.Date(p.Since, FieldSince); err != nil {
			return err
		}
	}
	if p.Until != "" {
		if err := validate.Date(p.Until, FieldUntil); err != nil {
			return err
		}
	}
	return p.ListParams.validate()
}

func (p UsageParams) options() github.UsageOptions {
	return github.UsageOptions{
		Since:       p.Since,
		Until:       p.Until,
		ListOptions: p.ListParams.options(),
	}
}

// Service administers Copilot through a github.Provider. It is safe for
// concurrent use; each call owns its retry loop.
type Service struct {
	provider   github.Provider
	logger     logging.Logger
	policy     retry.Policy
	classifier *classify.Classifier
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for rejected input, retries and
// classification records.
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRetryPolicy replaces the default retry policy. A policy without a
// logger inherits the service logger.
func WithRetryPolicy(policy retry.Policy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

// WithClassifier replaces the default classifier.
func WithClassifier(classifier *classify.Classifier) Option {
	return func(s *Service) {
		s.classifier = classifier
	}
}

// NewService creates a Service on top of provider.
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken(token))
//	if err != nil {
//	    return err
//	}
//	svc := copilot.NewService(provider, copilot.WithLogger(logger))
//	seats, err := svc.ListSeats(ctx, "octo-org", copilot.DefaultListParams())
func NewService(provider github.Provider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		policy:   retry.DefaultPolicy(),
	}
	s.policy.Logger = nil

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logging.Nop()
	}
	if s.policy.Logger == nil {
		s.policy.Logger = s.logger
	}
	if s.classifier == nil {
		s.classifier = classify.New(s.logger)
	}

	return s
}

// GetOrganizationUsage returns the daily Copilot usage summary of org.
func (s *Service) GetOrganizationUsage(ctx context.Context, org string, params UsageParams) (json.RawMessage, error) {
	const op = "get organization usage"
	if err := s.admit(op, validate.OrganizationName(org), params.validate()); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.GetOrganizationUsage(ctx, org, params.options())
	})
}

// GetEnterpriseUsage returns the daily Copilot usage summary of enterprise.
func (s *Service) GetEnterpriseUsage(ctx context.Context, enterprise string, params UsageParams) (json.RawMessage, error) {
	const op = "get enterprise usage"
	if err := s.admit(op, validate.EnterpriseName(enterprise), params.validate()); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.GetEnterpriseUsage(ctx, enterprise, params.options())
	})
}

// GetOrganizationMetrics returns the Copilot metrics of org.
func (s *Service) GetOrganizationMetrics(ctx context.Context, org string, params UsageParams) (json.RawMessage, error) {
	const op = "get organization metrics"
	if err := s.admit(op, validate.OrganizationName(org), params.validate()); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.GetOrganizationMetrics(ctx, org, params.options())
	})
}

// GetBilling returns the Copilot seat breakdown and policies of org.
func (s *Service) GetBilling(ctx context.Context, org string) (json.RawMessage, error) {
	const op = "get billing"
	if err := s.admit(op, validate.OrganizationName(org)); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.GetBilling(ctx, org)
	})
}

// ListSeats lists one page of Copilot seats in org.
func (s *Service) ListSeats(ctx context.Context, org string, params ListParams) (json.RawMessage, error) {
	const op = "list seats"
	if err := s.admit(op, validate.OrganizationName(org), params.validate()); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.ListSeats(ctx, org, params.options())
	})
}

// ListEnterpriseSeats lists one page of Copilot seats across enterprise.
func (s *Service) ListEnterpriseSeats(ctx context.Context, enterprise string, params ListParams) (json.RawMessage, error) {
	const op = "list enterprise seats"
	if err := s.admit(op, validate.EnterpriseName(enterprise), params.validate()); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.ListEnterpriseSeats(ctx, enterprise, params.options())
	})
}

// AddSeats assigns Copilot seats to usernames. One invalid username rejects
// the whole batch before any request is made.
func (s *Service) AddSeats(ctx context.Context, org string, usernames []string) (json.RawMessage, error) {
	const op = "add seats"
	if err := s.admit(op, validate.OrganizationName(org), validate.Usernames(usernames)); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.AddSeats(ctx, org, usernames)
	})
}

// RemoveSeats cancels the Copilot seats of usernames. One invalid username
// rejects the whole batch before any request is made.
func (s *Service) RemoveSeats(ctx context.Context, org string, usernames []string) (json.RawMessage, error) {
	const op = "remove seats"
	if err := s.admit(op, validate.OrganizationName(org), validate.Usernames(usernames)); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.CancelSeats(ctx, org, usernames)
	})
}

// GetSeatDetails returns the Copilot seat assigned to username in org.
func (s *Service) GetSeatDetails(ctx context.Context, org, username string) (json.RawMessage, error) {
	const op = "get seat details"
	if err := s.admit(op, validate.OrganizationName(org), validate.Username(username)); err != nil {
		return nil, err
	}
	return s.call(ctx, op, func(ctx context.Context) (json.RawMessage, error) {
		return s.provider.GetSeatDetails(ctx, org, username)
	})
}

// admit returns the first failed check.
func (s *Service) admit(op string, checks ...error) error {
	for _, err := range checks {
		if err != nil {
			s.logger.Warn("rejected invalid input", "operation", op, "field", validate.Field(err), "error", err)
			return err
		}
	}
	return nil
}

// call runs fn under the retry policy. Failures are translated on every
// attempt so the retry predicate sees classified errors; the surfaced error
// is classified and logged once.
func (s *Service) call(ctx context.Context, op string, fn func(context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	payload, err := retry.Do(ctx, s.policy, op, func(ctx context.Context) (json.RawMessage, error) {
		payload, err := fn(ctx)
		if err != nil {
			return nil, s.classifier.Translate(err, op)
		}
		return payload, nil
	})
	if err != nil {
		return nil, s.classifier.Classify(err, op)
	}

	s.logger.Debug("github request succeeded", "operation", op)
	return payload, nil
}
