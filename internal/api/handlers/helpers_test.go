package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/api/middleware"
	"github.com/welldanyogia/webrana-resource-api/internal/api/response"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
)

const (
	testUserID  = "11111111-1111-1111-1111-111111111111"
	testEmail   = "mattiv@matti.fi"
	testOtherID = "22222222-2222-2222-2222-222222222222"
)

var testUser = &models.User{ID: testUserID, Email: testEmail}

// newContext builds a request context, authenticated as testUser when auth is set
func newContext(e *echo.Echo, method, path, body string, auth bool) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if auth {
		middleware.SetUser(c, testUser)
	}
	return c, rec
}

// parseErrorResponse parses the error response from the recorder
func parseErrorResponse(rec *httptest.ResponseRecorder) (*response.ErrorResponse, error) {
	var resp response.ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	return &resp, err
}

// favoriteDocument mirrors the favorite resource envelope
type favoriteDocument struct {
	Data struct {
		ID         string `json:"id"`
		Type       string `json:"type"`
		Attributes struct {
			Airport struct {
				ID   string `json:"id"`
				Name string `json:"name"`
				IATA string `json:"iata"`
			} `json:"airport"`
			Note string `json:"note"`
		} `json:"attributes"`
	} `json:"data"`
}
