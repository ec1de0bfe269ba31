package ports

import (
	"context"

	"github.com/urcontent/dashboard-service/internal/core/domain"
)

// AuditRepository persists role resolution entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.ResolutionEntry) error
}

// AuditService records role resolution entries.
type AuditService interface {
	Record(ctx context.Context, entry domain.ResolutionEntry) error
}
