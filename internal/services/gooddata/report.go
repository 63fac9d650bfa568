package gooddata

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/pkg/metrics"
)

var reportProjectPattern = regexp.MustCompile(`/gdc/md/([^/]+)/`)

// executionState is the state of a report execution while it is awaited.
type executionState int

const (
	statePending executionState = iota
	stateCompleted
	stateTimedOut
)

// Report execution outcomes recorded in metrics.
const (
	outcomeCompleted = "completed"
	outcomeEmpty     = "empty"
	outcomeTimeout   = "timeout"
	outcomeError     = "error"
)

// ExecuteReport starts a report execution and waits for its data.
//
// The execute call answers with either a dataResult location, fetched at once and
// re-fetched while pending, or a poll location, fetched after each wait. A
// dataResult that never completes yields an empty result; a poll location that
// never completes yields a timeout error naming the retry count.
func (c *client) ExecuteReport(ctx context.Context, credential string, req *ReportRequest) (models.ReportResult, error) {
	if req == nil {
		return nil, domainerrors.NewValidationError("report request is required", "")
	}

	maxRetries := c.maxRetries
	if req.MaxRetries > 0 {
		maxRetries = req.MaxRetries
	}
	interval := c.pollInterval
	if req.PollInterval > 0 {
		interval = time.Duration(req.PollInterval) * time.Millisecond
	}

	filters := req.Filters
	if filters == nil {
		filters = []models.FilterItem{}
	}

	var exec executeResponse
	err := c.call(ctx, request{
		operation:  "execute_report",
		method:     http.MethodPost,
		path:       fmt.Sprintf("/gdc/app/projects/%s/execute", reportProjectID(req.ReportURI)),
		credential: credential,
		body: executeRequest{ReportReq: reportReq{
			Report: req.ReportURI,
			Context: reportContext{
				Filters:   filters,
				Dashboard: req.DashboardURI,
				Report:    req.ReportURI,
			},
		}},
	}, &exec)
	if err != nil {
		metrics.RecordReportExecution(outcomeError, 0)
		return nil, err
	}

	if exec.ExecResult != nil {
		switch {
		case exec.ExecResult.DataResult != "":
			return c.awaitDataResult(ctx, credential, exec.ExecResult.DataResult, maxRetries, interval)
		case exec.ExecResult.Poll != "":
			return c.awaitPoll(ctx, credential, exec.ExecResult.Poll, maxRetries, interval)
		}
	}

	metrics.RecordReportExecution(outcomeEmpty, 0)
	return models.EmptyReportResult(), nil
}

// awaitDataResult fetches the result location once, then re-fetches it after
// each wait until it completes or the retries run out.
func (c *client) awaitDataResult(ctx context.Context, credential, location string, maxRetries int, interval time.Duration) (models.ReportResult, error) {
	data, err := c.fetchReportData(ctx, credential, location, "fetch_report_result")
	if err != nil {
		metrics.RecordReportExecution(outcomeError, 0)
		return nil, err
	}

	state := stateOf(data)
	retries := maxRetries
	waits := 0
	for state == statePending {
		if retries == 0 {
			state = stateTimedOut
			break
		}

		if err := c.sleep(ctx, interval); err != nil {
			metrics.RecordReportExecution(outcomeError, waits)
			return nil, fmt.Errorf("report execution interrupted: %w", err)
		}
		waits++

		data, err = c.fetchReportData(ctx, credential, location, "fetch_report_result")
		if err != nil {
			metrics.RecordReportExecution(outcomeError, waits)
			return nil, err
		}
		retries--
		state = stateOf(data)
	}

	if state == stateTimedOut {
		c.logger.Warn().Int("retries", maxRetries).Msg("report result still pending, returning empty result")
		metrics.RecordReportExecution(outcomeEmpty, waits)
		return models.EmptyReportResult(), nil
	}

	metrics.RecordReportExecution(outcomeCompleted, waits)
	return models.ReportResult(data.XtabData), nil
}

// awaitPoll waits before every fetch of the poll location, up to maxRetries times.
func (c *client) awaitPoll(ctx context.Context, credential, location string, maxRetries int, interval time.Duration) (models.ReportResult, error) {
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := c.sleep(ctx, interval); err != nil {
			metrics.RecordReportExecution(outcomeError, attempt-1)
			return nil, fmt.Errorf("report execution interrupted: %w", err)
		}

		data, err := c.fetchReportData(ctx, credential, location, "poll_report")
		if err != nil {
			metrics.RecordReportExecution(outcomeError, attempt)
			return nil, err
		}

		if stateOf(data) == stateCompleted {
			metrics.RecordReportExecution(outcomeCompleted, attempt)
			return models.ReportResult(data.XtabData), nil
		}
	}

	c.logger.Warn().Int("retries", maxRetries).Msg("report execution timed out")
	metrics.RecordReportExecution(outcomeTimeout, maxRetries)
	return nil, domainerrors.NewPollTimeoutError(maxRetries)
}

// fetchReportData fetches a result or poll location. A payload that is valid
// JSON but not an object carries no marker and is treated as pending.
func (c *client) fetchReportData(ctx context.Context, credential, location, operation string) (*reportData, error) {
	_, body, err := c.do(ctx, request{
		operation:  operation,
		method:     http.MethodGet,
		path:       location,
		credential: credential,
	})
	if err != nil {
		return nil, err
	}

	var data reportData
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] != '{' && json.Valid(trimmed) {
		return &data, nil
	}
	if err := decode(operation, body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// stateOf reports whether a fetched payload carries the completion marker.
func stateOf(data *reportData) executionState {
	if hasValue(data.XtabData) {
		return stateCompleted
	}
	return statePending
}

// hasValue reports whether a raw JSON value is present and truthy:
// not null, false, zero or the empty string.
func hasValue(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	switch string(v) {
	case "", "null", "false", `""`:
		return false
	}
	if f, err := strconv.ParseFloat(string(v), 64); err == nil {
		return f != 0
	}
	return true
}

// reportProjectID extracts the project id from a report URI, or "" when absent.
func reportProjectID(reportURI string) string {
	if m := reportProjectPattern.FindStringSubmatch(reportURI); m != nil {
		return m[1]
	}
	return ""
}
