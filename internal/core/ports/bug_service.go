package ports

import (
	"context"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

// CreateBugInput carries the fields of a new bug report. Actor is the
// username from the request's claims, used for the audit trail.
type CreateBugInput struct {
	Title       string
	Description string
	ReportedBy  string
	Severity    string
	Actor       string
}

// UpdateBugInput is a partial update; nil fields are left untouched.
type UpdateBugInput struct {
	ID          string
	Title       *string
	Description *string
	Severity    *string
	Actor       string
}

// BugService defines use-case operations for bugs.
type BugService interface {
	Create(ctx context.Context, input CreateBugInput) (*domain.Bug, error)
	Get(ctx context.Context, id string) (*domain.Bug, error)
	List(ctx context.Context) ([]*domain.Bug, error)
	Update(ctx context.Context, input UpdateBugInput) (*domain.Bug, error)
	Delete(ctx context.Context, id, actor string) error
	// Assign links a bug to a developer; both must exist.
	Assign(ctx context.Context, bugID, developerID, actor string) (*domain.Bug, error)
}

// DeveloperService defines use-case operations for developers.
type DeveloperService interface {
	Create(ctx context.Context, name, actor string) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.Developer, error)
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, name, description, actor string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}
