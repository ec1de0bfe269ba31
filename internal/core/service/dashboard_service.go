package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/urcontent/dashboard-service/internal/api/metrics"
	"github.com/urcontent/dashboard-service/internal/core/domain"
	"github.com/urcontent/dashboard-service/internal/core/ports"
)

// ProfileRoleReader abstracts the profile role lookup.
type ProfileRoleReader interface {
	RoleOf(ctx context.Context, userID string) (string, error)
}

// AuditEnqueuer hands resolution entries to the asynchronous audit pipeline.
type AuditEnqueuer interface {
	Enqueue(entry domain.ResolutionEntry)
}

type dashboardService struct {
	profiles ProfileRoleReader
	audit    AuditEnqueuer
	log      zerolog.Logger
	now      func() time.Time
}

// NewDashboardService returns a DashboardService implementation.
func NewDashboardService(profiles ProfileRoleReader, audit AuditEnqueuer, log zerolog.Logger) ports.DashboardService {
	return &dashboardService{
		profiles: profiles,
		audit:    audit,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Resolve gathers the actor's role signals and picks a dashboard variant.
func (s *dashboardService) Resolve(ctx context.Context, in ports.DashboardInput) ports.DashboardView {
	// 1. Profile role. A failed lookup counts as "no profile".
	profileRole := ""
	if in.UserID != "" {
		role, err := s.profiles.RoleOf(ctx, in.UserID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("profile role lookup failed, resolving without profile")
		} else {
			profileRole = role
		}
	}

	// 2. Decide.
	res := domain.ResolveRole(domain.ActorIdentity{
		RouteHint:           in.RouteHint,
		ProfileRole:         profileRole,
		SessionMetadataRole: in.MetadataRole,
		EmailAddress:        in.Email,
	})

	// 3. Observability happens after the decision, never inside it.
	metrics.RoleResolutionsTotal.WithLabelValues(string(res.Role), string(res.Tier)).Inc()
	s.log.Debug().
		Str("user_id", in.UserID).
		Str("role", string(res.Role)).
		Str("tier", string(res.Tier)).
		Msg("dashboard role resolved")

	if in.UserID != "" {
		s.audit.Enqueue(domain.ResolutionEntry{
			ID:         uuid.NewString(),
			UserID:     in.UserID,
			Role:       res.Role,
			Tier:       res.Tier,
			RouteHint:  in.RouteHint,
			ResolvedAt: s.now(),
		})
	}

	return ports.DashboardView{
		Role: res.Role,
		Tier: res.Tier,
		Path: res.Role.DashboardPath(),
	}
}
