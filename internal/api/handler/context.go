package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urcontent/dashboard-service/internal/api/middleware"
)

// session holds the claims injected by the Auth middleware.
type session struct {
	UserID string
	Email  string
	Role   string
}

// ctxSession extracts the auth claims and fails fast when the Auth
// middleware did not run. Role may legitimately be empty.
func ctxSession(c echo.Context) (session, error) {
	var s session
	s.UserID, _ = c.Get(middleware.CtxUserID).(string)
	if s.UserID == "" {
		return session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	s.Email, _ = c.Get(middleware.CtxEmail).(string)
	s.Role, _ = c.Get(middleware.CtxRole).(string)
	return s, nil
}
