package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bugtrack/bugtrack-api/internal/auth"
)

// OptionalAuth resolves claims when a bearer token is present but admits the
// request without one. A token that is present and invalid is still rejected;
// silently ignoring a bad credential would mask client bugs. Used on routes
// whose behaviour differs for authenticated callers, such as registration.
func OptionalAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, rejectionReason(err))
			}

			c.Set(ContextUsername, claims.Subject)
			c.Set(ContextRole, claims.Role)
			return next(c)
		}
	}
}
