package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bugtrack/bugtrack-api/internal/auth"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bugs", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	raw, err := tokens.Issue("alice", "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newAuthTestContext(t, "Bearer "+raw)

	var gotUsername, gotRole string
	handler := Auth(tokens)(func(c echo.Context) error {
		gotUsername, _ = c.Get(ContextUsername).(string)
		gotRole, _ = c.Get(ContextRole).(string)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if gotUsername != "alice" || gotRole != "admin" {
		t.Fatalf("claims not injected: username=%q role=%q", gotUsername, gotRole)
	}
}

func TestAuth_LowercaseScheme(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	raw, _ := tokens.Issue("alice", "developer")

	c, _ := newAuthTestContext(t, "bearer "+raw)
	if err := Auth(tokens)(okHandler)(c); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	c, _ := newAuthTestContext(t, "")
	err := Auth(tokens)(okHandler)(c)

	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongScheme(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	for _, header := range []string{"Basic abc123", "Bearer", "token"} {
		c, _ := newAuthTestContext(t, header)
		err := Auth(tokens)(okHandler)(c)
		assertHTTPError(t, err, http.StatusUnauthorized)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	c, _ := newAuthTestContext(t, "Bearer not-a-jwt")
	err := Auth(tokens)(okHandler)(c)

	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Millisecond)
	raw, _ := tokens.Issue("alice", "developer")
	time.Sleep(10 * time.Millisecond)

	c, _ := newAuthTestContext(t, "Bearer "+raw)
	err := Auth(tokens)(okHandler)(c)

	assertHTTPError(t, err, http.StatusUnauthorized)
	httpErr := err.(*echo.HTTPError)
	if httpErr.Message != "token expired" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

// A rejected request must never reach the handler.
func TestAuth_NoHandlerSideEffects(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	c, _ := newAuthTestContext(t, "Bearer garbage")
	_ = handler(c)

	if called {
		t.Fatalf("handler ran despite rejected token")
	}
}

func TestOptionalAuth_NoHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	c, _ := newAuthTestContext(t, "")
	if err := OptionalAuth(tokens)(okHandler)(c); err != nil {
		t.Fatalf("anonymous request rejected: %v", err)
	}
	if c.Get(ContextUsername) != nil {
		t.Fatalf("claims set without a token")
	}
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	raw, _ := tokens.Issue("root", "admin")

	c, _ := newAuthTestContext(t, "Bearer "+raw)
	if err := OptionalAuth(tokens)(okHandler)(c); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if role, _ := c.Get(ContextRole).(string); role != "admin" {
		t.Fatalf("role not injected, got %q", role)
	}
}

func TestOptionalAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	c, _ := newAuthTestContext(t, "Bearer garbage")
	err := OptionalAuth(tokens)(okHandler)(c)

	assertHTTPError(t, err, http.StatusUnauthorized)
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != code {
		t.Fatalf("expected status %d, got %d", code, httpErr.Code)
	}
}
