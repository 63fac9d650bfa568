package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdportal/portal-service/internal/api/dto"
	"github.com/gdportal/portal-service/internal/api/middleware"
	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/services/gooddata"
	"github.com/gdportal/portal-service/internal/services/presentation"
)

// ProjectsHandler handles project and dashboard endpoints.
type ProjectsHandler struct {
	client gooddata.Client
}

// NewProjectsHandler creates a new ProjectsHandler.
func NewProjectsHandler(client gooddata.Client) *ProjectsHandler {
	return &ProjectsHandler{client: client}
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description Lists the projects the current user can access
// @Tags Projects
// @Produce json
// @Success 200 {object} dto.ProjectsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	s, _ := middleware.GetSession(c)

	projects, err := h.client.ListProjects(c.Request.Context(), s.Credential, s.SubjectID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectsResponse{Projects: projects})
}

// ListDashboards handles GET /api/projects/{projectId}/dashboards
// @Summary List dashboards
// @Description Lists the dashboards of a project
// @Tags Projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} dto.DashboardsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{projectId}/dashboards [get]
func (h *ProjectsHandler) ListDashboards(c *gin.Context) {
	s, _ := middleware.GetSession(c)

	dashboards, err := h.client.ListDashboards(c.Request.Context(), s.Credential, c.Param("projectId"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardsResponse{Dashboards: dashboards})
}

// GetDashboard handles GET /api/projects/{projectId}/dashboards/{dashboardId}
// @Summary Get dashboard
// @Description Returns the raw dashboard view with its tabs and filters formatted for the UI
// @Tags Projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Param dashboardId path string true "Dashboard ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{projectId}/dashboards/{dashboardId} [get]
func (h *ProjectsHandler) GetDashboard(c *gin.Context) {
	s, _ := middleware.GetSession(c)

	view, err := h.client.GetDashboardView(c.Request.Context(), s.Credential, c.Param("projectId"), c.Param("dashboardId"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	formatted := presentation.FormatDashboardView(view)
	c.JSON(http.StatusOK, dto.DashboardResponse{
		Dashboard: view,
		Tabs:      formatted.Tabs,
		Filters:   formatted.Filters,
	})
}

// Bootstrap handles GET /api/projects/{projectId}/bootstrap
// @Summary Account bootstrap
// @Description Returns the account bootstrap scoped to a project
// @Tags Projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} dto.BootstrapResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{projectId}/bootstrap [get]
func (h *ProjectsHandler) Bootstrap(c *gin.Context) {
	s, _ := middleware.GetSession(c)

	bootstrap, err := h.client.GetBootstrap(c.Request.Context(), s.Credential, c.Param("projectId"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BootstrapResponse{Bootstrap: bootstrap})
}

// Objects handles POST /api/projects/{projectId}/objects
// @Summary Get objects
// @Description Fetches metadata objects of a project in one batch
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param request body dto.ObjectsRequest true "Object URIs"
// @Success 200 {object} dto.ObjectsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{projectId}/objects [post]
func (h *ProjectsHandler) Objects(c *gin.Context) {
	s, _ := middleware.GetSession(c)

	var req dto.ObjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, domainerrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	objects, err := h.client.GetObjects(c.Request.Context(), s.Credential, c.Param("projectId"), req.URIs)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ObjectsResponse{Objects: objects})
}
