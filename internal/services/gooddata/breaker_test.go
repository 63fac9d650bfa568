package gooddata_test

import (
	"context"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/services/gooddata"
	"github.com/gdportal/portal-service/internal/testutils/mocks"
)

func newBreaker(inner gooddata.Client) *gooddata.CircuitBreakerClient {
	return gooddata.NewCircuitBreakerClient(inner, &gooddata.BreakerConfig{
		MinRequests:  2,
		FailureRatio: 0.5,
		Timeout:      time.Minute,
	})
}

func TestCircuitBreaker_PassesResultsThrough(t *testing.T) {
	inner := mocks.NewMockGoodDataClient()
	projects := []models.Project{{ID: "p1", Name: "Sales", URI: "/gdc/projects/p1"}}
	inner.On("ListProjects", mock.Anything, testCredential, "a1b2c3").Return(projects, nil)

	got, err := newBreaker(inner).ListProjects(context.Background(), testCredential, "a1b2c3")

	require.NoError(t, err)
	assert.Equal(t, projects, got)
	inner.AssertExpectations(t)
}

func TestCircuitBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	inner := mocks.NewMockGoodDataClient()
	inner.On("ListDashboards", mock.Anything, testCredential, "p1").Return(nil, domainerrors.NewUpstreamError(404))
	inner.On("Login", mock.Anything, "ana", "wrong").Return(nil, domainerrors.NewAuthenticationError(401))
	breaker := newBreaker(inner)

	for i := 0; i < 5; i++ {
		_, err := breaker.ListDashboards(context.Background(), testCredential, "p1")
		assert.True(t, domainerrors.IsUpstreamError(err))

		_, err = breaker.Login(context.Background(), "ana", "wrong")
		assert.True(t, domainerrors.IsAuthenticationError(err))
	}

	assert.Equal(t, gobreaker.StateClosed, breaker.State())
	inner.AssertNumberOfCalls(t, "ListDashboards", 5)
	inner.AssertNumberOfCalls(t, "Login", 5)
}

func TestCircuitBreaker_ServerErrorsOpenCircuit(t *testing.T) {
	inner := mocks.NewMockGoodDataClient()
	inner.On("GetBootstrap", mock.Anything, testCredential, "p1").Return(nil, domainerrors.NewUpstreamError(502))
	breaker := newBreaker(inner)

	for i := 0; i < 2; i++ {
		_, err := breaker.GetBootstrap(context.Background(), testCredential, "p1")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, breaker.State())

	_, err := breaker.GetBootstrap(context.Background(), testCredential, "p1")

	require.Error(t, err)
	domainErr, ok := domainerrors.GetDomainError(err)
	require.True(t, ok)
	assert.Equal(t, 503, domainErr.UpstreamStatus)
	inner.AssertNumberOfCalls(t, "GetBootstrap", 2)
}

func TestCircuitBreaker_ExecuteReportCountsOnce(t *testing.T) {
	inner := mocks.NewMockGoodDataClient()
	req := &gooddata.ReportRequest{ReportURI: testReportURI, DashboardURI: testDashboardURI}
	inner.On("ExecuteReport", mock.Anything, testCredential, req).Return(models.ReportResult(`{"x":1}`), nil)

	result, err := newBreaker(inner).ExecuteReport(context.Background(), testCredential, req)

	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(result))
	inner.AssertNumberOfCalls(t, "ExecuteReport", 1)
}
