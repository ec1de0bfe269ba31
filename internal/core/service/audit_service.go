package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/urcontent/dashboard-service/internal/api/metrics"
	"github.com/urcontent/dashboard-service/internal/core/domain"
	"github.com/urcontent/dashboard-service/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, userID, role, tier string) (bool, error)
	Mark(ctx context.Context, userID, role, tier string) error
}

type auditService struct {
	repo  ports.AuditRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, dedup DedupChecker, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, dedup: dedup, log: log}
}

// Record stores a resolution entry unless the same decision was recorded
// for the user within the dedup window.
func (s *auditService) Record(ctx context.Context, e domain.ResolutionEntry) error {
	role, tier := string(e.Role), string(e.Tier)

	// 1. Dedup. A failing check does not block recording.
	isDup, err := s.dedup.IsDuplicate(ctx, e.UserID, role, tier)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", e.UserID).Msg("dedup check failed, recording anyway")
	} else if isDup {
		metrics.AuditDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("user_id", e.UserID).Str("role", role).Msg("duplicate resolution skipped")
		return nil
	}
	metrics.AuditDedupTotal.WithLabelValues("miss").Inc()

	// 2. Persist.
	if err := s.repo.Insert(ctx, &e); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record resolution: %w", err)
	}

	// 3. Mark only once stored so a failed insert is retried on the next visit.
	if err := s.dedup.Mark(ctx, e.UserID, role, tier); err != nil {
		s.log.Warn().Err(err).Str("user_id", e.UserID).Msg("failed to set dedup key")
	}

	return nil
}
