// Package gooddata provides the authenticated client for the GoodData REST API.
package gooddata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/pkg/metrics"
)

const (
	// DefaultBaseURL is the GoodData instance used when none is configured.
	DefaultBaseURL = "https://analytics.totvs.com.br"

	DefaultMaxRetries   = 30
	DefaultPollInterval = 2000 * time.Millisecond

	// DefaultElementsLimit is the page size for attribute element searches.
	DefaultElementsLimit = 50

	errorBodyLogLimit = 200
)

// Client defines the interface for the GoodData API client.
// Every call except Login replays the session credential as its Cookie header.
type Client interface {
	// Login authenticates against the remote API and captures its session cookies.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	ListProjects(ctx context.Context, credential, subjectID string) ([]models.Project, error)
	ListDashboards(ctx context.Context, credential, projectID string) ([]models.Dashboard, error)

	// GetDashboardView returns the raw "view" representation of a dashboard.
	GetDashboardView(ctx context.Context, credential, projectID, dashboardID string) (map[string]any, error)

	// GetAttributeElements searches the values of an attribute. A limit <= 0 means DefaultElementsLimit.
	GetAttributeElements(ctx context.Context, credential, attributeURI, search string, limit int) ([]models.AttributeElement, error)

	// ExecuteReport runs a report and waits for its computed data.
	ExecuteReport(ctx context.Context, credential string, req *ReportRequest) (models.ReportResult, error)

	// GetObjects fetches metadata objects in batch. No request is sent when uris is empty.
	GetObjects(ctx context.Context, credential, projectID string, uris []string) (map[string]any, error)
	GetBootstrap(ctx context.Context, credential, projectID string) (map[string]any, error)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ClientConfig holds the configuration for the GoodData client.
type ClientConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	PollInterval time.Duration
	HTTPClient   *http.Client
	// Sleep replaces the poll wait, mainly for tests.
	Sleep  SleepFunc
	Logger *zerolog.Logger
}

// client implements the Client interface.
type client struct {
	baseURL      string
	httpClient   *http.Client
	maxRetries   int
	pollInterval time.Duration
	sleep        SleepFunc
	logger       zerolog.Logger
}

// NewClient creates a new GoodData API client.
func NewClient(cfg *ClientConfig) Client {
	if cfg == nil {
		cfg = &ClientConfig{}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = contextSleep
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &client{
		baseURL:      baseURL,
		httpClient:   httpClient,
		maxRetries:   maxRetries,
		pollInterval: pollInterval,
		sleep:        sleep,
		logger:       logger.With().Str("component", "gooddata").Logger(),
	}
}

// contextSleep waits on a timer, returning early with ctx.Err() on cancellation.
func contextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// resolve turns a remote path into an absolute URL. Absolute URLs pass through.
func (c *client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// request describes a single remote call.
type request struct {
	operation  string
	method     string
	path       string
	credential string
	body       any
}

// do sends a request and returns the response headers and body.
// Non-2xx responses become upstream errors; callers decide how to classify them.
func (c *client) do(ctx context.Context, r request) (http.Header, []byte, error) {
	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, nil, domainerrors.NewInternalError("failed to encode request", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.resolve(r.path), reader)
	if err != nil {
		return nil, nil, domainerrors.NewInternalError("failed to create request", err)
	}
	c.setHeaders(req, r.credential)

	c.logger.Debug().
		Str("operation", r.operation).
		Str("method", r.method).
		Str("path", r.path).
		Msg("gooddata request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordGoodDataRequest(r.operation, 0, time.Since(start))
		return nil, nil, fmt.Errorf("failed to execute %s request: %w", r.operation, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	metrics.RecordGoodDataRequest(r.operation, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s response: %w", r.operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Str("operation", r.operation).
			Int("status", resp.StatusCode).
			Str("body", truncate(string(data), errorBodyLogLimit)).
			Msg("gooddata request failed")
		return resp.Header, nil, domainerrors.NewUpstreamError(resp.StatusCode)
	}

	return resp.Header, data, nil
}

// call sends a request and decodes the JSON response into out.
// An empty body leaves out untouched, as the API answers some calls with 204.
func (c *client) call(ctx context.Context, r request, out any) error {
	_, data, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	return decode(r.operation, data, out)
}

func decode(operation string, data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return domainerrors.NewInternalError(fmt.Sprintf("failed to decode %s response", operation), err)
	}
	return nil
}

// setHeaders sets the headers sent on every GoodData request.
func (c *client) setHeaders(req *http.Request, credential string) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if credential != "" {
		req.Header.Set("Cookie", credential)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// lastSegment returns the part of a URI after its final slash.
func lastSegment(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
