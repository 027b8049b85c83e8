package ports

import (
	"context"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account. ActorRole is
// the role from the caller's claims, empty for unauthenticated requests; it
// gates admin registration.
type RegisterInput struct {
	Username  string
	Password  string
	Role      string
	ActorRole string
}

// AuthService authenticates credentials and registers accounts. Token
// issuance is not part of this interface; the login handler composes
// Authenticate with the token service.
type AuthService interface {
	// Authenticate returns the user matching the credentials, or
	// domain.ErrInvalidCredentials. Unknown username and wrong password are
	// indistinguishable to the caller.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
