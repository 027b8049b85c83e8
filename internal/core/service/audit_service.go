package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

// AuditWriter persists audit events dequeued by the dispatcher workers.
type AuditWriter struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditWriter(repo ports.AuditRepository, logger zerolog.Logger) *AuditWriter {
	return &AuditWriter{repo: repo, logger: logger}
}

func (w *AuditWriter) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := w.repo.Insert(ctx, &event); err != nil {
		w.logger.Error().Err(err).Str("action", event.Action).Msg("audit insert failed")
		return err
	}
	return nil
}
