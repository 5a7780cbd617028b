// Package handler implements the HTTP endpoints of the parking API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// historyLimit caps the session and payment history listings.
const historyLimit = 20

// dbTimeout bounds every store call issued from a handler.
const dbTimeout = 5 * time.Second

// errJSON writes the uniform error body: a human-readable message plus a
// stable machine-readable code.
func errJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, echo.Map{"message": message, "code": code})
}

// serverErr hides store failure detail from clients; the cause is logged
// by the caller's echo logger, never echoed back.
func serverErr(c echo.Context, err error) error {
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	return errJSON(c, http.StatusInternalServerError, "server_error", "server error")
}

// userIDFrom extracts the authenticated user ID set by the JWT middleware.
func userIDFrom(c echo.Context) (uint64, error) {
	if id, ok := c.Get("user_id").(uint64); ok && id > 0 {
		return id, nil
	}
	return 0, errors.New("no authenticated user in context")
}

// reqCtx derives a bounded context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}
