package dto

import "github.com/gdportal/portal-service/internal/domain/models"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	User    models.UserInfo `json:"user"`
	Message string          `json:"message"`
}

// MeResponse represents the current user.
type MeResponse struct {
	User models.UserInfo `json:"user"`
}

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProjectsResponse represents the response for listing projects.
type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

// DashboardsResponse represents the response for listing dashboards.
type DashboardsResponse struct {
	Dashboards []models.Dashboard `json:"dashboards"`
}

// DashboardResponse carries the raw dashboard view with its formatted tabs and filters.
type DashboardResponse struct {
	Dashboard map[string]any  `json:"dashboard"`
	Tabs      []models.Tab    `json:"tabs"`
	Filters   []models.Filter `json:"filters"`
}

// BootstrapResponse represents the account bootstrap payload.
type BootstrapResponse struct {
	Bootstrap map[string]any `json:"bootstrap"`
}

// ObjectsResponse represents the response for a batch object lookup.
type ObjectsResponse struct {
	Objects map[string]any `json:"objects"`
}

// ElementsResponse represents the response for an attribute element search.
type ElementsResponse struct {
	Elements []models.AttributeElement `json:"elements"`
}

// ReportResponse carries a computed report.
type ReportResponse struct {
	Data models.ReportResult `json:"data" swaggertype:"object"`
}
