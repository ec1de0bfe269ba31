package ports

import (
	"context"

	"github.com/urcontent/dashboard-service/internal/core/domain"
)

// DashboardInput carries the session signals of the requesting actor.
type DashboardInput struct {
	UserID       string
	Email        string
	MetadataRole string
	RouteHint    string
}

// DashboardView tells the client which dashboard variant to mount.
type DashboardView struct {
	Role domain.Role
	Tier domain.ResolutionTier
	Path string
}

// DashboardService resolves the dashboard variant for an actor. It never
// fails on missing or unreadable role signals.
type DashboardService interface {
	Resolve(ctx context.Context, input DashboardInput) DashboardView
}
