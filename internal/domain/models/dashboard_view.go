package models

// DashboardView is the UI shape of a dashboard's structure.
type DashboardView struct {
	Tabs    []Tab    `json:"tabs"`
	Filters []Filter `json:"filters"`
}

// Tab is a dashboard tab and the KPIs placed on it.
type Tab struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	KPIs       []KPI  `json:"kpis"`
}

// KPI is a single item placed on a tab.
type KPI struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Obj         string `json:"obj"`
}

// Filter is a dashboard-level filter control.
type Filter struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Type         string `json:"type"`
	AttributeURI string `json:"attributeUri"`
	Multiple     bool   `json:"multiple"`
}
