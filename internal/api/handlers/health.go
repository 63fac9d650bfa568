package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker/v2"

	"github.com/gdportal/portal-service/internal/api/dto"
	"github.com/gdportal/portal-service/internal/core/cache"
)

// BreakerState reports the state of the circuit breaker in front of GoodData.
type BreakerState interface {
	State() gobreaker.State
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	cache   cache.Cache
	breaker BreakerState
}

// NewHealthHandler creates a new HealthHandler. breaker may be nil when the
// circuit breaker is disabled.
func NewHealthHandler(cache cache.Cache, breaker BreakerState) *HealthHandler {
	return &HealthHandler{
		cache:   cache,
		breaker: breaker,
	}
}

// Health handles the /health endpoint.
// @Summary Health check
// @Description Returns the overall health status and component statuses
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Failure 503 {object} dto.HealthResponse "Service unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	healthy := true

	if err := h.cache.Ping(c.Request.Context()); err != nil {
		components["cache"] = "unhealthy"
		healthy = false
	} else {
		components["cache"] = "healthy"
	}

	// An open circuit degrades the service but does not make it unhealthy.
	if h.breaker != nil {
		switch h.breaker.State() {
		case gobreaker.StateOpen:
			components["gooddata"] = "degraded"
		case gobreaker.StateHalfOpen:
			components["gooddata"] = "recovering"
		default:
			components["gooddata"] = "healthy"
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, dto.HealthResponse{
		Status:     status,
		Components: components,
	})
}

// Ready handles the /ready endpoint.
// @Summary Readiness check
// @Description Returns 200 if the service is ready to accept traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service ready"
// @Failure 503 {object} map[string]string "Service not ready"
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.cache.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "cache unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Live handles the /live endpoint.
// @Summary Liveness check
// @Description Returns 200 if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service alive"
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
