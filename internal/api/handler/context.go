package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bugtrack/bugtrack-api/internal/api/middleware"
)

// ctxClaims extracts the auth claims injected by the Auth middleware.
// A non-empty username proves the gate ran; handlers on protected routes
// fast-fail with 401 if it is absent rather than proceed unattributed.
func ctxClaims(c echo.Context) (username, role string, err error) {
	username, _ = c.Get(middleware.ContextUsername).(string)
	role, _ = c.Get(middleware.ContextRole).(string)
	if username == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, role, nil
}
