package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urcontent/dashboard-service/internal/core/domain"
)

// RBAC admits requests whose signed account role is one of allowed. The
// claim is normalized with domain.ParseRole, so legacy aliases match their
// canonical role. Dashboard role resolution is never consulted here.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claim, _ := c.Get(CtxRole).(string)
			role, ok := domain.ParseRole(claim)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			if _, ok := set[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
