package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gdportal/portal-service/internal/api/dto"
	"github.com/gdportal/portal-service/internal/api/middleware"
	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/services/gooddata"
)

// FiltersHandler handles filter value lookups.
type FiltersHandler struct {
	client gooddata.Client
}

// NewFiltersHandler creates a new FiltersHandler.
func NewFiltersHandler(client gooddata.Client) *FiltersHandler {
	return &FiltersHandler{client: client}
}

// Elements handles GET /api/filters/elements
// @Summary Attribute elements
// @Description Lists the selectable values of an attribute filter
// @Tags Filters
// @Produce json
// @Param uri query string true "Attribute URI"
// @Param q query string false "Search text"
// @Param limit query int false "Maximum number of elements" default(50)
// @Success 200 {object} dto.ElementsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/filters/elements [get]
func (h *FiltersHandler) Elements(c *gin.Context) {
	s, _ := middleware.GetSession(c)

	var query dto.ElementsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleError(c, domainerrors.NewValidationError("invalid query parameters", err.Error()))
		return
	}
	if query.URI == "" {
		middleware.HandleError(c, domainerrors.NewValidationError("attribute uri is required", ""))
		return
	}

	elements, err := h.client.GetAttributeElements(c.Request.Context(), s.Credential, query.URI, query.Search, parseLimit(query.Limit))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ElementsResponse{Elements: elements})
}

// parseLimit falls back to the default for missing, malformed or non-positive limits.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return gooddata.DefaultElementsLimit
	}
	return limit
}
