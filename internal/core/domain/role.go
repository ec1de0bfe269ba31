package domain

// Role selects which dashboard variant an actor is shown.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCreator  Role = "creator"
	RoleBusiness Role = "business"
)

// roleAliases maps legacy role names still found in older accounts.
var roleAliases = map[string]Role{
	"venue": RoleBusiness,
}

// ParseRole reports the Role named by s. Matching is exact; "venue" is
// accepted as the legacy name of RoleBusiness.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleCreator, RoleBusiness:
		return r, true
	}
	if r, ok := roleAliases[s]; ok {
		return r, true
	}
	return "", false
}

// SelfAssignable reports whether an account may pick this role for itself
// at registration or on its own profile.
func (r Role) SelfAssignable() bool {
	return r == RoleCreator || r == RoleBusiness
}

// DashboardPath is the route of the dashboard variant for r.
func (r Role) DashboardPath() string {
	return "/dashboard/" + string(r)
}
