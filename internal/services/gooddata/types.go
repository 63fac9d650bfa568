package gooddata

import (
	"github.com/goccy/go-json"

	"github.com/gdportal/portal-service/internal/domain/models"
)

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	// Credential is the Cookie header value to replay on later calls.
	Credential string
	SubjectID  string
}

// ReportRequest describes a report execution.
type ReportRequest struct {
	ReportURI    string
	DashboardURI string
	Filters      []models.FilterItem
	// MaxRetries and PollInterval override the client defaults when positive.
	MaxRetries   int
	PollInterval int // milliseconds
}

type loginRequest struct {
	PostUserLogin postUserLogin `json:"postUserLogin"`
}

type postUserLogin struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Remember int    `json:"remember"`
}

type projectsResponse struct {
	Projects []projectEnvelope `json:"projects"`
}

type projectEnvelope struct {
	Project struct {
		Meta struct {
			Title      string `json:"title"`
			Identifier string `json:"identifier"`
		} `json:"meta"`
		Links *struct {
			Self string `json:"self"`
		} `json:"links"`
	} `json:"project"`
}

type dashboardsResponse struct {
	Query *struct {
		Entries []dashboardEntry `json:"entries"`
	} `json:"query"`
}

type dashboardEntry struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Summary string `json:"summary"`
}

type attributeElementsResponse struct {
	AttributeElements *struct {
		Elements []models.AttributeElement `json:"elements"`
	} `json:"attributeElements"`
}

type executeRequest struct {
	ReportReq reportReq `json:"report_req"`
}

type reportReq struct {
	Report  string        `json:"report"`
	Context reportContext `json:"context"`
}

type reportContext struct {
	Filters   []models.FilterItem `json:"filters"`
	Dashboard string              `json:"dashboard"`
	Report    string              `json:"report"`
}

type executeResponse struct {
	ExecResult *struct {
		DataResult string `json:"dataResult"`
		Poll       string `json:"poll"`
	} `json:"execResult"`
}

// reportData is a fetched result or poll payload.
type reportData struct {
	XtabData json.RawMessage `json:"xtab_data"`
}

type objectsRequest struct {
	Get struct {
		Items []string `json:"items"`
	} `json:"get"`
}
