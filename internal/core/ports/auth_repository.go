package ports

import (
	"context"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

// UserRepository defines the persistence operations the auth core needs.
// Implementations map their uniqueness violation to domain.ErrUserExists and
// a missing row to domain.ErrUserNotFound.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// CountByRole supports the admin bootstrap rule: the first admin may be
	// registered without an admin token.
	CountByRole(ctx context.Context, role string) (int64, error)
}

// LoginThrottle limits repeated failed login attempts per username.
type LoginThrottle interface {
	// TooManyFailures reports whether username has exceeded the failure
	// budget inside the current window.
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	ClearFailures(ctx context.Context, username string) error
}
