package domain

import "time"

// ResolutionEntry records one dashboard role decision for auditing.
type ResolutionEntry struct {
	ID         string         `bson:"_id"`
	UserID     string         `bson:"user_id"`
	Role       Role           `bson:"role"`
	Tier       ResolutionTier `bson:"tier"`
	RouteHint  string         `bson:"route_hint,omitempty"`
	ResolvedAt time.Time      `bson:"resolved_at"`
}
