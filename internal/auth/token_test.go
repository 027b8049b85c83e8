package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("signing-secret", time.Hour)

	raw, err := svc.Issue("alice", "admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Validate(raw)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("signing-secret", time.Millisecond)

	raw, err := svc.Issue("alice", "developer")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := svc.Validate(raw); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("signing-secret", time.Hour)

	raw, err := svc.Issue("alice", "developer")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one character in the signature segment.
	i := strings.LastIndex(raw, ".") + 1
	flipped := byte('A')
	if raw[i] == 'A' {
		flipped = 'B'
	}
	tampered := raw[:i] + string(flipped) + raw[i+1:]

	if _, err := svc.Validate(tampered); !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	validator := NewTokenService("secret-two", time.Hour)

	raw, err := issuer.Issue("alice", "developer")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := validator.Validate(raw); !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

// The validator pins HS256: a token naming any other algorithm must be
// rejected even when it is otherwise well formed.
func TestTokenService_AlgorithmConfusion(t *testing.T) {
	svc := NewTokenService("signing-secret", time.Hour)

	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	if _, err := svc.Validate(unsigned); !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid for alg=none, got %v", err)
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte("signing-secret"))
	if err != nil {
		t.Fatalf("sign hs512 token: %v", err)
	}
	if _, err := svc.Validate(hs512); !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid for alg=HS512, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("signing-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Validate(raw); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", raw, err)
		}
	}
}
