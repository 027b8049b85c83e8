// Package auth holds the cryptographic core: password hashing and token
// issuance/validation. Both are stateless; the secrets they hold are injected
// once at startup and never read from the environment here.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

// PasswordHasher derives and verifies bcrypt digests. The configured pepper
// is prepended to the plaintext before hashing, so a leaked database alone is
// not enough to mount an offline attack.
type PasswordHasher struct {
	pepper []byte
	cost   int
}

func NewPasswordHasher(pepper string) *PasswordHasher {
	return &PasswordHasher{pepper: []byte(pepper), cost: bcrypt.DefaultCost}
}

// Hash returns the bcrypt digest of the peppered plaintext. Two calls on the
// same input yield different digests; bcrypt embeds its own per-call salt.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.ErrInvalidInput
	}
	digest, err := bcrypt.GenerateFromPassword(h.peppered(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext reproduces digest. A malformed digest is
// treated as a mismatch, never an error.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), h.peppered(plaintext)) == nil
}

func (h *PasswordHasher) peppered(plaintext string) []byte {
	b := make([]byte, 0, len(h.pepper)+len(plaintext))
	b = append(b, h.pepper...)
	return append(b, plaintext...)
}
