// Package presentation reshapes loosely typed GoodData payloads into the
// stable shapes served to the UI. Every field is an optional lookup with a
// literal default; nothing here fails on an unexpected shape.
package presentation

import (
	"strconv"
	"strings"

	"github.com/gdportal/portal-service/internal/domain/models"
)

const (
	// DefaultTabTitle is used for tabs without a title.
	DefaultTabTitle = "Sem título"
	// DefaultFilterType is used for filters without a type.
	DefaultFilterType = "list"
)

// FormatDashboardView extracts tabs and filters from a raw dashboard view.
// The dashboard content is read from projectDashboard.content when present,
// otherwise from the top level of raw.
func FormatDashboardView(raw map[string]any) models.DashboardView {
	content := raw
	if dashboard := asMap(raw["projectDashboard"]); dashboard != nil {
		if c := asMap(dashboard["content"]); c != nil {
			content = c
		}
	}

	return models.DashboardView{
		Tabs:    FormatTabs(content["tabs"]),
		Filters: FormatFilters(content["filters"]),
	}
}

// FormatTabs maps a raw tab list. Anything that is not a list yields no tabs.
func FormatTabs(raw any) []models.Tab {
	items := asList(raw)
	tabs := make([]models.Tab, 0, len(items))
	for _, item := range items {
		tab := unwrap(item)
		if tab == nil {
			continue
		}

		title := stringField(tab, "title")
		if title == "" {
			title = DefaultTabTitle
		}

		kpis := tab["kpis"]
		if kpis == nil {
			kpis = tab["items"]
		}

		tabs = append(tabs, models.Tab{
			Identifier: stringField(tab, "identifier"),
			Title:      title,
			KPIs:       formatKPIs(kpis),
		})
	}
	return tabs
}

func formatKPIs(raw any) []models.KPI {
	items := asList(raw)
	kpis := make([]models.KPI, 0, len(items))
	for _, item := range items {
		kpi := unwrap(item)
		if kpi == nil {
			continue
		}
		kpis = append(kpis, models.KPI{
			Label:       stringField(kpi, "label", "title"),
			Description: stringField(kpi, "description"),
			Obj:         stringField(kpi, "obj", "uri"),
		})
	}
	return kpis
}

// FormatFilters maps a raw filter list. A filter allows multiple selection
// only when its multiple flag is exactly the number 1.
func FormatFilters(raw any) []models.Filter {
	items := asList(raw)
	filters := make([]models.Filter, 0, len(items))
	for _, item := range items {
		filter := unwrap(item)
		if filter == nil {
			continue
		}

		filterType := stringField(filter, "type")
		if filterType == "" {
			filterType = DefaultFilterType
		}

		filters = append(filters, models.Filter{
			ID:           stringField(filter, "id", "identifier"),
			Label:        stringField(filter, "label", "title"),
			Type:         filterType,
			AttributeURI: stringField(filter, "attributeUri", "attribute", "obj"),
			Multiple:     isExactlyOne(filter["multiple"]),
		})
	}
	return filters
}

// unwrap returns the object of a list entry, descending into a single-key
// wrapper such as {"kpiItem": {...}}.
func unwrap(item any) map[string]any {
	m := asMap(item)
	if len(m) != 1 {
		return m
	}
	for key, value := range m {
		if inner := asMap(value); inner != nil && strings.HasSuffix(key, "Item") {
			return inner
		}
	}
	return m
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// stringField returns the first non-empty value among keys, or "".
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func isExactlyOne(v any) bool {
	switch n := v.(type) {
	case float64:
		return n == 1
	case int:
		return n == 1
	case int64:
		return n == 1
	default:
		return false
	}
}
