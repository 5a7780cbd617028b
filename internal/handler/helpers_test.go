package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
)

// newJSONCtx builds an echo context for a JSON request. authedAs > 0
// pre-populates the user ID the auth middleware would have set.
func newJSONCtx(method, target, body string, authedAs uint64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authedAs > 0 {
		c.Set("user_id", authedAs)
	}
	return c, rec
}
