package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bugs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
		{domain.ErrInvalidSeverity, http.StatusBadRequest, "invalid severity"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrUserExists, http.StatusConflict, "username taken"},
		{domain.ErrProjectExists, http.StatusConflict, "project already exists"},
		{domain.ErrBugNotFound, http.StatusNotFound, "bug not found"},
		{domain.ErrDeveloperNotFound, http.StatusNotFound, "developer not found"},
		{domain.ErrProjectNotFound, http.StatusNotFound, "project not found"},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "service temporarily unavailable"},
	}

	for _, tc := range cases {
		code, resp := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.code, code)
		}
		if resp.Status != "failure" {
			t.Fatalf("%v: expected failure envelope, got %q", tc.err, resp.Status)
		}
		if resp.Message != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, resp.Message)
		}
	}
}

// Wrapped domain errors must still resolve to their mapped status.
func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, resp := renderError(t, fmt.Errorf("find bug: %w", domain.ErrBugNotFound))
	if code != http.StatusNotFound || resp.Message != "bug not found" {
		t.Fatalf("wrapped error not resolved: %d %+v", code, resp)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp.Status != "failure" || resp.Message != "invalid token" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

// Internal error text must never reach the client.
func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, resp := renderError(t, errors.New("mongo: socket closed at 10.0.0.5"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Message != "internal server error" {
		t.Fatalf("internal details leaked: %q", resp.Message)
	}
}
