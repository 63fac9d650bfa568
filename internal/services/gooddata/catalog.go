package gooddata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gdportal/portal-service/internal/domain/models"
)

const defaultProjectName = "Sem nome"

// ListProjects lists the projects of a user profile.
func (c *client) ListProjects(ctx context.Context, credential, subjectID string) ([]models.Project, error) {
	var resp projectsResponse
	err := c.call(ctx, request{
		operation:  "list_projects",
		method:     http.MethodGet,
		path:       fmt.Sprintf("/gdc/account/profile/%s/projects", subjectID),
		credential: credential,
	}, &resp)
	if err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(resp.Projects))
	for _, item := range resp.Projects {
		meta := item.Project.Meta

		uri := ""
		if item.Project.Links != nil {
			uri = item.Project.Links.Self
		}

		id := lastSegment(uri)
		if id == "" {
			id = meta.Identifier
		}

		name := meta.Title
		if name == "" {
			name = defaultProjectName
		}

		projects = append(projects, models.Project{ID: id, Name: name, URI: uri})
	}
	return projects, nil
}

// ListDashboards lists the non-deleted dashboards of a project.
func (c *client) ListDashboards(ctx context.Context, credential, projectID string) ([]models.Dashboard, error) {
	var resp dashboardsResponse
	err := c.call(ctx, request{
		operation:  "list_dashboards",
		method:     http.MethodGet,
		path:       fmt.Sprintf("/gdc/md/%s/query/projectdashboards?showAll=0", projectID),
		credential: credential,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Query == nil {
		return []models.Dashboard{}, nil
	}

	dashboards := make([]models.Dashboard, 0, len(resp.Query.Entries))
	for _, entry := range resp.Query.Entries {
		dashboards = append(dashboards, models.Dashboard{
			ID:      lastSegment(entry.Link),
			Title:   entry.Title,
			Summary: entry.Summary,
			URI:     entry.Link,
		})
	}
	return dashboards, nil
}

// GetDashboardView returns the raw view of a dashboard object.
func (c *client) GetDashboardView(ctx context.Context, credential, projectID, dashboardID string) (map[string]any, error) {
	view := map[string]any{}
	err := c.call(ctx, request{
		operation:  "get_dashboard_view",
		method:     http.MethodGet,
		path:       fmt.Sprintf("/gdc/md/%s/obj/%s/view", projectID, dashboardID),
		credential: credential,
	}, &view)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// GetAttributeElements searches the elements of an attribute.
func (c *client) GetAttributeElements(ctx context.Context, credential, attributeURI, search string, limit int) ([]models.AttributeElement, error) {
	if limit <= 0 {
		limit = DefaultElementsLimit
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if search != "" {
		params.Set("filter", search)
	}

	var resp attributeElementsResponse
	err := c.call(ctx, request{
		operation:  "get_attribute_elements",
		method:     http.MethodGet,
		path:       attributeURI + "/elements?" + params.Encode(),
		credential: credential,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.AttributeElements == nil || resp.AttributeElements.Elements == nil {
		return []models.AttributeElement{}, nil
	}
	return resp.AttributeElements.Elements, nil
}

// GetObjects fetches metadata objects by URI.
func (c *client) GetObjects(ctx context.Context, credential, projectID string, uris []string) (map[string]any, error) {
	if len(uris) == 0 {
		return map[string]any{"objects": []any{}}, nil
	}

	var body objectsRequest
	body.Get.Items = uris

	objects := map[string]any{}
	err := c.call(ctx, request{
		operation:  "get_objects",
		method:     http.MethodPost,
		path:       fmt.Sprintf("/gdc/md/%s/objects/get", projectID),
		credential: credential,
		body:       body,
	}, &objects)
	if err != nil {
		return nil, err
	}
	return objects, nil
}

// GetBootstrap returns the account bootstrap resource scoped to a project.
func (c *client) GetBootstrap(ctx context.Context, credential, projectID string) (map[string]any, error) {
	bootstrap := map[string]any{}
	err := c.call(ctx, request{
		operation:  "get_bootstrap",
		method:     http.MethodGet,
		path:       "/gdc/app/account/bootstrap?projectUri=/gdc/projects/" + projectID,
		credential: credential,
	}, &bootstrap)
	if err != nil {
		return nil, err
	}
	return bootstrap, nil
}
