package testutils

import (
	"github.com/gdportal/portal-service/internal/domain/models"
)

// Test constants
const (
	TestUsername     = "ana@example.com"
	TestPassword     = "s3cret"
	TestCredential   = "GDCAuthSST=sst-value; GDCAuthTT=tt-value"
	TestSubjectID    = "a1b2c3d4"
	TestProjectID    = "proj123"
	TestDashboardID  = "4711"
	TestReportURI    = "/gdc/md/proj123/obj/900"
	TestDashboardURI = "/gdc/md/proj123/obj/4711"
	TestAttributeURI = "/gdc/md/proj123/obj/55"
)

// NewTestSession creates a session with default values.
func NewTestSession() *models.Session {
	return models.NewSession(TestCredential, TestSubjectID, TestUsername)
}

// NewTestProjects creates a project listing.
func NewTestProjects() []models.Project {
	return []models.Project{
		{ID: TestProjectID, Name: "Vendas", URI: "/gdc/projects/" + TestProjectID},
		{ID: "proj456", Name: "Sem nome", URI: "/gdc/projects/proj456"},
	}
}

// NewTestDashboards creates a dashboard listing.
func NewTestDashboards() []models.Dashboard {
	return []models.Dashboard{
		{ID: TestDashboardID, Title: "Resumo", Summary: "Indicadores gerais", URI: TestDashboardURI},
	}
}

// NewTestDashboardView creates a raw dashboard view with one tab and one filter.
func NewTestDashboardView() map[string]any {
	return map[string]any{
		"projectDashboard": map[string]any{
			"content": map[string]any{
				"tabs": []any{
					map[string]any{
						"identifier": "tab1",
						"title":      "Geral",
						"items": []any{
							map[string]any{"title": "Receita", "uri": TestReportURI},
						},
					},
				},
				"filters": []any{
					map[string]any{
						"filterItem": map[string]any{
							"id":       "f1",
							"label":    "Região",
							"obj":      TestAttributeURI,
							"multiple": float64(1),
						},
					},
				},
			},
		},
	}
}
