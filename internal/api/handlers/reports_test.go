package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gdportal/portal-service/internal/api/dto"
	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/services/gooddata"
	"github.com/gdportal/portal-service/internal/testutils"
)

func TestReportsHandler_Execute(t *testing.T) {
	f := newAPIFixture(t)
	filters := []models.FilterItem{{URI: testutils.TestAttributeURI}}
	expected := &gooddata.ReportRequest{
		ReportURI:    testutils.TestReportURI,
		DashboardURI: testutils.TestDashboardURI,
		Filters:      filters,
	}
	f.client.On("ExecuteReport", mock.Anything, testutils.TestCredential, expected).
		Return(models.ReportResult(`{"rows":[[1,2]]}`), nil)

	w := testutils.PerformRequest(f.router, http.MethodPost, "/api/reports/execute", dto.ExecuteReportRequest{
		ReportURI:    testutils.TestReportURI,
		DashboardURI: testutils.TestDashboardURI,
		Filters:      filters,
	}, f.headers)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"data":{"rows":[[1,2]]}}`, w.Body.String())
	f.client.AssertExpectations(t)
}

func TestReportsHandler_Execute_EmptyResult(t *testing.T) {
	f := newAPIFixture(t)
	f.client.On("ExecuteReport", mock.Anything, mock.Anything, mock.Anything).
		Return(models.EmptyReportResult(), nil)

	w := testutils.PerformRequest(f.router, http.MethodPost, "/api/reports/execute", dto.ExecuteReportRequest{
		ReportURI:    testutils.TestReportURI,
		DashboardURI: testutils.TestDashboardURI,
	}, f.headers)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"data":{}}`, w.Body.String())
}

func TestReportsHandler_Execute_RequiresURIs(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name string
		body dto.ExecuteReportRequest
	}{
		{"missing report", dto.ExecuteReportRequest{DashboardURI: testutils.TestDashboardURI}},
		{"missing dashboard", dto.ExecuteReportRequest{ReportURI: testutils.TestReportURI}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutils.PerformRequest(f.router, http.MethodPost, "/api/reports/execute", tt.body, f.headers)
			testutils.AssertStatusCode(t, http.StatusBadRequest, w)
		})
	}
	f.client.AssertNotCalled(t, "ExecuteReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportsHandler_Execute_Timeout(t *testing.T) {
	f := newAPIFixture(t)
	f.client.On("ExecuteReport", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewPollTimeoutError(30))

	w := testutils.PerformRequest(f.router, http.MethodPost, "/api/reports/execute", dto.ExecuteReportRequest{
		ReportURI:    testutils.TestReportURI,
		DashboardURI: testutils.TestDashboardURI,
	}, f.headers)

	testutils.AssertStatusCode(t, http.StatusInternalServerError, w)
	var response dto.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeTimeout, response.Code)
	assert.Contains(t, response.Error, "30 attempts")
}
