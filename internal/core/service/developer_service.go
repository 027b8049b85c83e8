package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

type DeveloperService struct {
	repo   ports.DeveloperRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewDeveloperService(repo ports.DeveloperRepository, audit ports.AuditRecorder, logger zerolog.Logger) *DeveloperService {
	return &DeveloperService{repo: repo, audit: audit, logger: logger}
}

func (s *DeveloperService) Create(ctx context.Context, name, actor string) (*domain.Developer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Developer{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("developer insert failed")
		return nil, domain.ErrStoreUnavailable
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			Actor:     actor,
			Action:    domain.AuditDeveloperCreated,
			Subject:   created.ID,
			Timestamp: time.Now().UTC(),
		})
	}
	return created, nil
}

func (s *DeveloperService) List(ctx context.Context) ([]*domain.Developer, error) {
	devs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("developer list failed")
		return nil, domain.ErrStoreUnavailable
	}
	return devs, nil
}
