package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bugtrack/bugtrack-api/internal/api/metrics"
	"github.com/bugtrack/bugtrack-api/internal/core/domain"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

type BugService struct {
	bugs   ports.BugRepository
	devs   ports.DeveloperRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewBugService(bugs ports.BugRepository, devs ports.DeveloperRepository, audit ports.AuditRecorder, logger zerolog.Logger) *BugService {
	return &BugService{bugs: bugs, devs: devs, audit: audit, logger: logger}
}

func (s *BugService) Create(ctx context.Context, input ports.CreateBugInput) (*domain.Bug, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	severity := domain.Severity(input.Severity)
	if severity == "" {
		severity = domain.SeverityMedium
	}
	if !severity.Valid() {
		return nil, domain.ErrInvalidSeverity
	}

	now := time.Now().UTC()
	bug := &domain.Bug{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		ReportedBy:  input.ReportedBy,
		Severity:    severity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.bugs.Create(ctx, bug)
	if err != nil {
		s.logger.Error().Err(err).Msg("bug insert failed")
		return nil, domain.ErrStoreUnavailable
	}

	metrics.BugsCreatedTotal.WithLabelValues(string(severity)).Inc()
	s.record(input.Actor, domain.AuditBugCreated, created.ID)
	s.logger.Info().Str("bug_id", created.ID).Str("severity", string(severity)).Msg("bug created")
	return created, nil
}

func (s *BugService) Get(ctx context.Context, id string) (*domain.Bug, error) {
	bug, err := s.bugs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBugNotFound) {
			return nil, domain.ErrBugNotFound
		}
		s.logger.Error().Err(err).Str("bug_id", id).Msg("bug lookup failed")
		return nil, domain.ErrStoreUnavailable
	}
	return bug, nil
}

func (s *BugService) List(ctx context.Context) ([]*domain.Bug, error) {
	bugs, err := s.bugs.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("bug list failed")
		return nil, domain.ErrStoreUnavailable
	}
	return bugs, nil
}

// Update applies a partial update; nil fields keep their stored value.
func (s *BugService) Update(ctx context.Context, input ports.UpdateBugInput) (*domain.Bug, error) {
	bug, err := s.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domain.ErrInvalidInput
		}
		bug.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		bug.Description = *input.Description
	}
	if input.Severity != nil {
		severity := domain.Severity(*input.Severity)
		if !severity.Valid() {
			return nil, domain.ErrInvalidSeverity
		}
		bug.Severity = severity
	}
	bug.UpdatedAt = time.Now().UTC()

	updated, err := s.bugs.Update(ctx, bug)
	if err != nil {
		if errors.Is(err, domain.ErrBugNotFound) {
			return nil, domain.ErrBugNotFound
		}
		s.logger.Error().Err(err).Str("bug_id", input.ID).Msg("bug update failed")
		return nil, domain.ErrStoreUnavailable
	}

	s.record(input.Actor, domain.AuditBugUpdated, updated.ID)
	return updated, nil
}

func (s *BugService) Delete(ctx context.Context, id, actor string) error {
	if err := s.bugs.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrBugNotFound) {
			return domain.ErrBugNotFound
		}
		s.logger.Error().Err(err).Str("bug_id", id).Msg("bug delete failed")
		return domain.ErrStoreUnavailable
	}
	s.record(actor, domain.AuditBugDeleted, id)
	return nil
}

// Assign links a bug to a developer. Both sides must exist; a missing
// developer is reported as such rather than silently storing a dangling id.
func (s *BugService) Assign(ctx context.Context, bugID, developerID, actor string) (*domain.Bug, error) {
	if _, err := s.devs.FindByID(ctx, developerID); err != nil {
		if errors.Is(err, domain.ErrDeveloperNotFound) {
			return nil, domain.ErrDeveloperNotFound
		}
		s.logger.Error().Err(err).Str("developer_id", developerID).Msg("developer lookup failed")
		return nil, domain.ErrStoreUnavailable
	}

	bug, err := s.Get(ctx, bugID)
	if err != nil {
		return nil, err
	}
	bug.DeveloperID = developerID
	bug.UpdatedAt = time.Now().UTC()

	updated, err := s.bugs.Update(ctx, bug)
	if err != nil {
		s.logger.Error().Err(err).Str("bug_id", bugID).Msg("bug assign failed")
		return nil, domain.ErrStoreUnavailable
	}

	s.record(actor, domain.AuditBugAssigned, bugID)
	s.logger.Info().Str("bug_id", bugID).Str("developer_id", developerID).Msg("bug assigned")
	return updated, nil
}

func (s *BugService) record(actor, action, subject string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}
