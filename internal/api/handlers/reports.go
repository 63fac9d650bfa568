package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdportal/portal-service/internal/api/dto"
	"github.com/gdportal/portal-service/internal/api/middleware"
	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/services/gooddata"
)

// ReportsHandler handles report executions.
type ReportsHandler struct {
	client gooddata.Client
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(client gooddata.Client) *ReportsHandler {
	return &ReportsHandler{client: client}
}

// Execute handles POST /api/reports/execute
// @Summary Execute report
// @Description Executes a report in the context of a dashboard and waits for its data
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body dto.ExecuteReportRequest true "Report, dashboard and filters"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/execute [post]
func (h *ReportsHandler) Execute(c *gin.Context) {
	s, _ := middleware.GetSession(c)

	var req dto.ExecuteReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, domainerrors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if req.ReportURI == "" || req.DashboardURI == "" {
		middleware.HandleError(c, domainerrors.NewValidationError("reportUri and dashboardUri are required", ""))
		return
	}

	result, err := h.client.ExecuteReport(c.Request.Context(), s.Credential, &gooddata.ReportRequest{
		ReportURI:    req.ReportURI,
		DashboardURI: req.DashboardURI,
		Filters:      req.Filters,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Data: result})
}
