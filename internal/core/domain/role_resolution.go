package domain

import "strings"

// ActorIdentity carries every role signal known about an authenticated
// actor when a dashboard is rendered. An empty field means the signal is
// absent.
type ActorIdentity struct {
	// RouteHint is set by deep links that target a dashboard variant directly.
	RouteHint string
	// ProfileRole comes from the actor's profile record, once one exists.
	ProfileRole string
	// SessionMetadataRole is the role recorded when the account was created.
	SessionMetadataRole string
	EmailAddress        string
}

// ResolutionTier names the precedence tier that decided a Resolution.
type ResolutionTier string

const (
	TierRouteHint       ResolutionTier = "route_hint"
	TierProfile         ResolutionTier = "profile"
	TierSessionMetadata ResolutionTier = "session_metadata"
	TierEmail           ResolutionTier = "email"
	TierDefault         ResolutionTier = "default"
)

// Resolution is the outcome of ResolveRole.
type Resolution struct {
	Role Role           `json:"role"`
	Tier ResolutionTier `json:"tier"`
}

// emailPatterns are checked in order; the first contained substring wins.
var emailPatterns = []struct {
	substr string
	role   Role
}{
	{"admin@", RoleAdmin},
	{"venue@", RoleBusiness},
	{"business@", RoleBusiness},
	{"creator@", RoleCreator},
}

// ResolveRole picks the dashboard role for id. Signals are consulted from
// the most to the least explicit and the first usable one wins:
//
//	route hint → profile role → session metadata role → email pattern → creator
//
// The email tier is a convenience for legacy demo accounts and must not be
// used for authorization.
func ResolveRole(id ActorIdentity) Resolution {
	switch r := Role(id.RouteHint); r {
	case RoleAdmin, RoleCreator, RoleBusiness:
		return Resolution{Role: r, Tier: TierRouteHint}
	}

	if r, ok := ParseRole(id.ProfileRole); ok {
		return Resolution{Role: r, Tier: TierProfile}
	}

	if r, ok := ParseRole(id.SessionMetadataRole); ok {
		return Resolution{Role: r, Tier: TierSessionMetadata}
	}

	if id.EmailAddress != "" {
		for _, p := range emailPatterns {
			if strings.Contains(id.EmailAddress, p.substr) {
				return Resolution{Role: p.role, Tier: TierEmail}
			}
		}
	}

	return Resolution{Role: RoleCreator, Tier: TierDefault}
}
