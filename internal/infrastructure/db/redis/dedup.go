package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupTTL = time.Hour

// DedupChecker suppresses repeated resolution audit entries within a window.
// Key format: dedup:resolution:<user_id>:<role>:<tier>
type DedupChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
// A non-positive ttl falls back to one hour.
func NewDedupChecker(client *redis.Client, ttl time.Duration) *DedupChecker {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &DedupChecker{client: client, ttl: ttl}
}

// IsDuplicate reports whether this decision was already recorded in the window.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID, role, tier string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, role, tier)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the decision (expires after the configured ttl).
func (d *DedupChecker) Mark(ctx context.Context, userID, role, tier string) error {
	return d.client.Set(ctx, d.key(userID, role, tier), "1", d.ttl).Err()
}

func (d *DedupChecker) key(userID, role, tier string) string {
	return fmt.Sprintf("dedup:resolution:%s:%s:%s", userID, role, tier)
}
