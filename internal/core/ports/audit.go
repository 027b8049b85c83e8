package ports

import (
	"context"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence. Recording
// is best-effort: implementations must never block a request path.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditService persists a single audit event. Consumed by the dispatcher
// workers.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository defines persistence operations for audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
