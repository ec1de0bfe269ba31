package ports

import (
	"context"

	"github.com/urcontent/dashboard-service/internal/core/domain"
)

// ListProfilesFilter carries the query parameters for listing profiles.
type ListProfilesFilter struct {
	Role  domain.Role // empty = any role
	Page  int         // 1-based
	Limit int         // capped at 100 by the service
}

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// Upsert creates the profile or replaces its mutable fields, keeping CreatedAt.
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	List(ctx context.Context, filter ListProfilesFilter) ([]*domain.Profile, int64, error)
}

// ProfileRoleCache stores the profile role per user. A cached empty role
// means the user has no profile.
type ProfileRoleCache interface {
	Get(ctx context.Context, userID string) (role string, found bool, err error)
	Set(ctx context.Context, userID, role string) error
	// SetIfAbsent stores role only when userID has no cached entry.
	SetIfAbsent(ctx context.Context, userID, role string) error
	Invalidate(ctx context.Context, userID string) error
}
