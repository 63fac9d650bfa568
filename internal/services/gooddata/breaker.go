package gooddata

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/pkg/metrics"
)

const breakerName = "gooddata-api"

var _ Client = (*CircuitBreakerClient)(nil)

// BreakerConfig holds the circuit breaker settings.
type BreakerConfig struct {
	// MinRequests is the number of requests observed before the circuit may open.
	MinRequests  uint32
	FailureRatio float64
	// Timeout is how long the circuit stays open before a trial request.
	Timeout time.Duration
}

// CircuitBreakerClient wraps a Client with a circuit breaker.
// Only transport errors and upstream 5xx responses count as failures, so a
// wrong password or a missing object never opens the circuit.
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[any]
}

// NewCircuitBreakerClient wraps client with a circuit breaker.
func NewCircuitBreakerClient(client Client, cfg *BreakerConfig) *CircuitBreakerClient {
	if cfg == nil {
		cfg = &BreakerConfig{}
	}
	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = 10
	}
	ratio := cfg.FailureRatio
	if ratio <= 0 {
		ratio = 0.6
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= ratio
			if shouldTrip {
				log.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening gooddata circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		IsSuccessful: isSuccessful,
	})

	return &CircuitBreakerClient{client: client, cb: cb}
}

// isSuccessful reports whether err leaves the remote API healthy.
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	domainErr, ok := domainerrors.GetDomainError(err)
	if !ok {
		return false
	}
	switch domainErr.Code {
	case domainerrors.ErrCodeUpstream:
		return domainErr.UpstreamStatus < 500
	case domainerrors.ErrCodeTimeout, domainerrors.ErrCodeInternal:
		return false
	default:
		return true
	}
}

// State returns the current breaker state.
func (b *CircuitBreakerClient) State() gobreaker.State {
	return b.cb.State()
}

// execute runs fn through the breaker. An open circuit answers with an upstream 503.
func execute[T any](b *CircuitBreakerClient, fn func() (T, error)) (T, error) {
	result, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			log.Warn().Err(err).Msg("gooddata request rejected by circuit breaker")
			return zero, domainerrors.NewUpstreamError(503)
		}
		return zero, err
	}
	return result.(T), nil
}

// Login authenticates through the breaker.
func (b *CircuitBreakerClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	return execute(b, func() (*LoginResult, error) {
		return b.client.Login(ctx, username, password)
	})
}

// ListProjects lists projects through the breaker.
func (b *CircuitBreakerClient) ListProjects(ctx context.Context, credential, subjectID string) ([]models.Project, error) {
	return execute(b, func() ([]models.Project, error) {
		return b.client.ListProjects(ctx, credential, subjectID)
	})
}

// ListDashboards lists dashboards through the breaker.
func (b *CircuitBreakerClient) ListDashboards(ctx context.Context, credential, projectID string) ([]models.Dashboard, error) {
	return execute(b, func() ([]models.Dashboard, error) {
		return b.client.ListDashboards(ctx, credential, projectID)
	})
}

// GetDashboardView fetches a dashboard view through the breaker.
func (b *CircuitBreakerClient) GetDashboardView(ctx context.Context, credential, projectID, dashboardID string) (map[string]any, error) {
	return execute(b, func() (map[string]any, error) {
		return b.client.GetDashboardView(ctx, credential, projectID, dashboardID)
	})
}

// GetAttributeElements searches attribute elements through the breaker.
func (b *CircuitBreakerClient) GetAttributeElements(ctx context.Context, credential, attributeURI, search string, limit int) ([]models.AttributeElement, error) {
	return execute(b, func() ([]models.AttributeElement, error) {
		return b.client.GetAttributeElements(ctx, credential, attributeURI, search, limit)
	})
}

// ExecuteReport runs a report through the breaker. The whole execution, polling
// included, counts as a single request.
func (b *CircuitBreakerClient) ExecuteReport(ctx context.Context, credential string, req *ReportRequest) (models.ReportResult, error) {
	return execute(b, func() (models.ReportResult, error) {
		return b.client.ExecuteReport(ctx, credential, req)
	})
}

// GetObjects fetches objects through the breaker.
func (b *CircuitBreakerClient) GetObjects(ctx context.Context, credential, projectID string, uris []string) (map[string]any, error) {
	return execute(b, func() (map[string]any, error) {
		return b.client.GetObjects(ctx, credential, projectID, uris)
	})
}

// GetBootstrap fetches the bootstrap resource through the breaker.
func (b *CircuitBreakerClient) GetBootstrap(ctx context.Context, credential, projectID string) (map[string]any, error) {
	return execute(b, func() (map[string]any, error) {
		return b.client.GetBootstrap(ctx, credential, projectID)
	})
}

// stateToFloat converts a breaker state to its gauge value.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
