package ports

import (
	"context"

	"github.com/urcontent/dashboard-service/internal/core/domain"
)

// UpsertProfileInput carries the fields an actor may set on a profile.
// ActorRole is the caller's signed account role and decides whether a
// non self-assignable role may be stored.
type UpsertProfileInput struct {
	UserID      string
	ActorRole   string
	DisplayName string
	Role        string
	Bio         string
}

// ListProfilesInput carries the parameters of the admin listing.
type ListProfilesInput struct {
	Role  string
	Page  int
	Limit int
}

// ListProfilesResult is one page of profiles.
type ListProfilesResult struct {
	Items      []*domain.Profile
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, input UpsertProfileInput) (*domain.Profile, error)
	List(ctx context.Context, input ListProfilesInput) (*ListProfilesResult, error)
	// RoleOf returns the profile role for userID, or "" when no profile exists.
	RoleOf(ctx context.Context, userID string) (string, error)
}
