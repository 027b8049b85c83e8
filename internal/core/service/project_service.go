package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, audit: audit, logger: logger}
}

// Create persists a new project. New projects start active.
func (s *ProjectService) Create(ctx context.Context, name, description, actor string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Project{
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("project insert failed")
		return nil, domain.ErrStoreUnavailable
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			Actor:     actor,
			Action:    domain.AuditProjectCreated,
			Subject:   created.ID,
			Timestamp: time.Now().UTC(),
		})
	}
	s.logger.Info().Str("project_id", created.ID).Str("name", name).Msg("project created")
	return created, nil
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("project list failed")
		return nil, domain.ErrStoreUnavailable
	}
	return projects, nil
}
