package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gdportal/portal-service/internal/api/dto"
	domainerrors "github.com/gdportal/portal-service/internal/domain/errors"
	"github.com/gdportal/portal-service/internal/domain/models"
	"github.com/gdportal/portal-service/internal/testutils"
)

func TestFiltersHandler_Elements(t *testing.T) {
	f := newAPIFixture(t)
	elements := []models.AttributeElement{{Title: "São Paulo", URI: testutils.TestAttributeURI + "/elements?id=1"}}
	f.client.On("GetAttributeElements", mock.Anything, testutils.TestCredential, testutils.TestAttributeURI, "São", 10).
		Return(elements, nil)

	w := testutils.PerformRequest(f.router, http.MethodGet, "/api/filters/elements?uri="+testutils.TestAttributeURI+"&q=S%C3%A3o&limit=10", nil, f.headers)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	var response dto.ElementsResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, elements, response.Elements)
	f.client.AssertExpectations(t)
}

func TestFiltersHandler_Elements_DefaultLimit(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing", ""},
		{"malformed", "&limit=abc"},
		{"zero", "&limit=0"},
		{"negative", "&limit=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.client.On("GetAttributeElements", mock.Anything, mock.Anything, testutils.TestAttributeURI, "", 50).
				Return([]models.AttributeElement{}, nil)

			w := testutils.PerformRequest(f.router, http.MethodGet, "/api/filters/elements?uri="+testutils.TestAttributeURI+tt.query, nil, f.headers)

			testutils.AssertStatusCode(t, http.StatusOK, w)
			assert.JSONEq(t, `{"elements":[]}`, w.Body.String())
			f.client.AssertExpectations(t)
		})
	}
}

func TestFiltersHandler_Elements_RequiresURI(t *testing.T) {
	f := newAPIFixture(t)

	w := testutils.PerformRequest(f.router, http.MethodGet, "/api/filters/elements?q=abc", nil, f.headers)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	var response dto.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeValidation, response.Code)
	f.client.AssertNotCalled(t, "GetAttributeElements", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
