package auth

import (
	"errors"
	"testing"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher("pepper")

	digest, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "Secret123" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("Secret123", digest) {
		t.Fatalf("Verify rejected the original password")
	}
}

func TestPasswordHasher_WrongPassword(t *testing.T) {
	h := NewPasswordHasher("pepper")

	digest, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h.Verify("Other456", digest) {
		t.Fatalf("Verify accepted a different password")
	}
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewPasswordHasher("pepper")

	d1, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	d2, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two digests of the same password are identical")
	}
	if !h.Verify("Secret123", d1) || !h.Verify("Secret123", d2) {
		t.Fatalf("both digests should verify against the password")
	}
}

func TestPasswordHasher_PepperMatters(t *testing.T) {
	h1 := NewPasswordHasher("pepper-one")
	h2 := NewPasswordHasher("pepper-two")

	digest, err := h1.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h2.Verify("Secret123", digest) {
		t.Fatalf("digest verified under a different pepper")
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher("pepper")

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$garbage"} {
		if h.Verify("Secret123", digest) {
			t.Fatalf("Verify accepted malformed digest %q", digest)
		}
	}
}

func TestPasswordHasher_EmptyPlaintext(t *testing.T) {
	h := NewPasswordHasher("pepper")

	if _, err := h.Hash(""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
