package models

import "encoding/json"

// Project is a workspace the user can access.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Dashboard is a project dashboard listing entry.
type Dashboard struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URI     string `json:"uri"`
}

// AttributeElement is a selectable value of an attribute filter.
type AttributeElement struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// FilterConstraint narrows a filter, e.g. a date range.
type FilterConstraint struct {
	Type string `json:"type"`
	From string `json:"from"`
	To   string `json:"to"`
}

// FilterItem is a filter applied to a report execution context.
type FilterItem struct {
	URI        string            `json:"uri"`
	Constraint *FilterConstraint `json:"constraint,omitempty"`
}

// ReportResult is the computed report payload, passed through unmodified.
type ReportResult = json.RawMessage

// EmptyReportResult is returned when an execution yields no data.
func EmptyReportResult() ReportResult {
	return ReportResult("{}")
}
