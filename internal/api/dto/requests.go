// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/gdportal/portal-service/internal/domain/models"

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ObjectsRequest represents the request body for a batch object lookup.
type ObjectsRequest struct {
	URIs []string `json:"uris"`
}

// ElementsQuery represents the query parameters of an attribute element search.
type ElementsQuery struct {
	URI    string `form:"uri"`
	Search string `form:"q"`
	Limit  string `form:"limit"`
}

// ExecuteReportRequest represents the request body for a report execution.
type ExecuteReportRequest struct {
	ReportURI    string              `json:"reportUri"`
	DashboardURI string              `json:"dashboardUri"`
	Filters      []models.FilterItem `json:"filters"`
}
