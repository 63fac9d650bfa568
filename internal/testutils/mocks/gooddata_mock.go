// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/services/gooddata"
)

// MockGoodDataClient is a mock implementation of gooddata.Client.
type MockGoodDataClient struct {
	mock.Mock
}

var _ gooddata.Client = (*MockGoodDataClient)(nil)

// NewMockGoodDataClient creates a new MockGoodDataClient.
func NewMockGoodDataClient() *MockGoodDataClient {
	return &MockGoodDataClient{}
}

// Login mocks a login.
func (m *MockGoodDataClient) Login(ctx context.Context, username, password string) (*gooddata.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gooddata.LoginResult), args.Error(1)
}

// ListProjects mocks a project listing.
func (m *MockGoodDataClient) ListProjects(ctx context.Context, credential, subjectID string) ([]models.Project, error) {
	args := m.Called(ctx, credential, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

// ListDashboards mocks a dashboard listing.
func (m *MockGoodDataClient) ListDashboards(ctx context.Context, credential, projectID string) ([]models.Dashboard, error) {
	args := m.Called(ctx, credential, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dashboard), args.Error(1)
}

// GetDashboardView mocks a dashboard view fetch.
func (m *MockGoodDataClient) GetDashboardView(ctx context.Context, credential, projectID, dashboardID string) (map[string]any, error) {
	args := m.Called(ctx, credential, projectID, dashboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// GetAttributeElements mocks an attribute element search.
func (m *MockGoodDataClient) GetAttributeElements(ctx context.Context, credential, attributeURI, search string, limit int) ([]models.AttributeElement, error) {
	args := m.Called(ctx, credential, attributeURI, search, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttributeElement), args.Error(1)
}

// ExecuteReport mocks a report execution.
func (m *MockGoodDataClient) ExecuteReport(ctx context.Context, credential string, req *gooddata.ReportRequest) (models.ReportResult, error) {
	args := m.Called(ctx, credential, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.ReportResult), args.Error(1)
}

// GetObjects mocks a batch object fetch.
func (m *MockGoodDataClient) GetObjects(ctx context.Context, credential, projectID string, uris []string) (map[string]any, error) {
	args := m.Called(ctx, credential, projectID, uris)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// GetBootstrap mocks a bootstrap fetch.
func (m *MockGoodDataClient) GetBootstrap(ctx context.Context, credential, projectID string) (map[string]any, error) {
	args := m.Called(ctx, credential, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
