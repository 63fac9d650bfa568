package metrics_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/gdportal/portal-service/internal/pkg/metrics"
)

func TestRecordGoodDataRequest(t *testing.T) {
	before := testutil.ToFloat64(metrics.GoodDataRequests.WithLabelValues("list_projects", "200"))

	metrics.RecordGoodDataRequest("list_projects", http.StatusOK, 10*time.Millisecond)

	after := testutil.ToFloat64(metrics.GoodDataRequests.WithLabelValues("list_projects", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordGoodDataRequest_TransportError(t *testing.T) {
	before := testutil.ToFloat64(metrics.GoodDataRequests.WithLabelValues("login", "error"))

	metrics.RecordGoodDataRequest("login", 0, time.Millisecond)

	after := testutil.ToFloat64(metrics.GoodDataRequests.WithLabelValues("login", "error"))
	assert.Equal(t, before+1, after)
}

func TestRecordReportExecution(t *testing.T) {
	before := testutil.ToFloat64(metrics.ReportExecutions.WithLabelValues("timeout"))

	metrics.RecordReportExecution("timeout", 30)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ReportExecutions.WithLabelValues("timeout")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/api/projects", "401"))

	metrics.RecordHTTPRequest("GET", "/api/projects", http.StatusUnauthorized, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/api/projects", "401")))
}
