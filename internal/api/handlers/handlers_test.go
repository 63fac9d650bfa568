// Package handlers_test provides unit tests for the API handlers.
package handlers_test

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gdportal/portal-service/internal/api/handlers"
	"github.com/gdportal/portal-service/internal/api/middleware"
	"github.com/gdportal/portal-service/internal/services/session"
	"github.com/gdportal/portal-service/internal/testutils"
	"github.com/gdportal/portal-service/internal/testutils/mocks"
)

// apiFixture routes the session-protected endpoints to a mocked GoodData client.
type apiFixture struct {
	client  *mocks.MockGoodDataClient
	router  *gin.Engine
	headers map[string]string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	client := mocks.NewMockGoodDataClient()
	codec := session.NewCodec(nil)

	projects := handlers.NewProjectsHandler(client)
	filters := handlers.NewFiltersHandler(client)
	reports := handlers.NewReportsHandler(client)

	router := testutils.SetupTestRouter()
	api := router.Group("/api", middleware.NewSessionMiddleware(codec).RequireSession())
	api.GET("/projects", projects.ListProjects)
	api.GET("/projects/:projectId/dashboards", projects.ListDashboards)
	api.GET("/projects/:projectId/dashboards/:dashboardId", projects.GetDashboard)
	api.GET("/projects/:projectId/bootstrap", projects.Bootstrap)
	api.POST("/projects/:projectId/objects", projects.Objects)
	api.GET("/filters/elements", filters.Elements)
	api.POST("/reports/execute", reports.Execute)

	return &apiFixture{
		client: client,
		router: router,
		headers: map[string]string{
			"Cookie": testutils.SessionCookie(t, codec, testutils.NewTestSession()),
		},
	}
}
