package ports

import (
	"context"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence. Recording
// is best-effort: a failed write never fails the request that produced it.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}
