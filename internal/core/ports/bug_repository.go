package ports

import (
	"context"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

// BugRepository defines persistence operations for bugs.
type BugRepository interface {
	Create(ctx context.Context, bug *domain.Bug) (*domain.Bug, error)
	FindByID(ctx context.Context, id string) (*domain.Bug, error)
	// List returns all bugs, newest first.
	List(ctx context.Context) ([]*domain.Bug, error)
	Update(ctx context.Context, bug *domain.Bug) (*domain.Bug, error)
	// Delete reports domain.ErrBugNotFound when no row matched.
	Delete(ctx context.Context, id string) error
}

// DeveloperRepository defines persistence operations for developers.
type DeveloperRepository interface {
	Create(ctx context.Context, dev *domain.Developer) (*domain.Developer, error)
	FindByID(ctx context.Context, id string) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.Developer, error)
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}
