package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bugtrack/bugtrack-api/internal/api/metrics"
	"github.com/bugtrack/bugtrack-api/internal/auth"
)

// Context keys under which the gate stores the resolved claims.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth is the access gate: it extracts the bearer token, validates it, and
// injects the resolved claims into the request context. Rejection happens
// before the handler runs, so no handler side effect is possible on a
// rejected request.
func Auth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(validationResult(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, rejectionReason(err))
			}

			metrics.TokenValidationsTotal.WithLabelValues("admitted").Inc()
			c.Set(ContextUsername, claims.Subject)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}

func validationResult(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	case errors.Is(err, auth.ErrTokenSignatureInvalid):
		return "invalid_signature"
	default:
		return "malformed"
	}
}

// rejectionReason maps a token error to the client-visible message. The
// message names the failure class only; no library error text leaks out.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "token expired"
	default:
		return "invalid token"
	}
}
