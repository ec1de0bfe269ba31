package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultProfileCacheTTL = 10 * time.Minute

// ProfileRoleCache caches the profile role of each user.
// Key format: profile_role:<user_id>; an empty value means "no profile".
type ProfileRoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileRoleCache creates a cache with the given entry ttl.
func NewProfileRoleCache(client *redis.Client, ttl time.Duration) *ProfileRoleCache {
	if ttl <= 0 {
		ttl = defaultProfileCacheTTL
	}
	return &ProfileRoleCache{client: client, ttl: ttl}
}

func (c *ProfileRoleCache) Get(ctx context.Context, userID string) (string, bool, error) {
	role, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("profile cache get: %w", err)
	}
	return role, true, nil
}

func (c *ProfileRoleCache) Set(ctx context.Context, userID, role string) error {
	if err := c.client.Set(ctx, c.key(userID), role, c.ttl).Err(); err != nil {
		return fmt.Errorf("profile cache set: %w", err)
	}
	return nil
}

// SetIfAbsent populates the entry only when no value is cached, so a read
// that raced with a write-through never overwrites the newer role.
func (c *ProfileRoleCache) SetIfAbsent(ctx context.Context, userID, role string) error {
	if err := c.client.SetNX(ctx, c.key(userID), role, c.ttl).Err(); err != nil {
		return fmt.Errorf("profile cache setnx: %w", err)
	}
	return nil
}

func (c *ProfileRoleCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("profile cache invalidate: %w", err)
	}
	return nil
}

func (c *ProfileRoleCache) key(userID string) string {
	return "profile_role:" + userID
}
