package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/urcontent/dashboard-service/internal/api/metrics"
	"github.com/urcontent/dashboard-service/internal/core/domain"
	"github.com/urcontent/dashboard-service/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ProfileService struct {
	repo   ports.ProfileRepository
	cache  ports.ProfileRoleCache
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, cache ports.ProfileRoleCache, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, cache: cache, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Upsert creates or updates the caller's profile. Only admins may store a
// role that is not self-assignable.
func (s *ProfileService) Upsert(ctx context.Context, in ports.UpsertProfileInput) (*domain.Profile, error) {
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	if !role.SelfAssignable() && domain.Role(in.ActorRole) != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	saved, err := s.repo.Upsert(ctx, &domain.Profile{
		UserID:      in.UserID,
		DisplayName: in.DisplayName,
		Role:        role,
		Bio:         in.Bio,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("failed to save profile")
		return nil, err
	}

	// Write through; fall back to dropping the entry so a stale role
	// cannot outlive the write.
	if err := s.cache.Set(ctx, in.UserID, string(role)); err != nil {
		s.logger.Warn().Err(err).Str("user_id", in.UserID).Msg("failed to refresh profile role cache")
		if err := s.cache.Invalidate(ctx, in.UserID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", in.UserID).Msg("failed to invalidate profile role cache")
		}
	}

	s.logger.Info().Str("user_id", in.UserID).Str("role", string(role)).Msg("profile saved")
	return saved, nil
}

func (s *ProfileService) List(ctx context.Context, in ports.ListProfilesInput) (*ports.ListProfilesResult, error) {
	filter := ports.ListProfilesFilter{Page: in.Page, Limit: in.Limit}
	if in.Role != "" {
		role, ok := domain.ParseRole(in.Role)
		if !ok {
			return nil, domain.ErrInvalidRole
		}
		filter.Role = role
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListProfilesResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// RoleOf returns the profile role of userID, consulting the cache first.
// A user without a profile yields "" and no error.
func (s *ProfileService) RoleOf(ctx context.Context, userID string) (string, error) {
	role, found, err := s.cache.Get(ctx, userID)
	switch {
	case err != nil:
		metrics.ProfileCacheTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("profile role cache read failed")
	case found:
		metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
		return role, nil
	default:
		metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		role = ""
	case err != nil:
		return "", err
	default:
		role = string(profile.Role)
	}

	if err := s.cache.SetIfAbsent(ctx, userID, role); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("profile role cache write failed")
	}
	return role, nil
}
