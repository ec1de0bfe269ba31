package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urcontent/dashboard-service/internal/core/ports"
)

// DashboardHandler tells clients which dashboard variant to mount.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type dashboardResponse struct {
	Role string `json:"role"`
	Tier string `json:"tier"`
	Path string `json:"path"`
}

// Get handles GET /v1/dashboard.
//
// @Summary      Resolve the dashboard variant for the caller
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        view  query     string  false  "Deep-link hint (admin, creator, business)"
// @Success      200   {object}  dashboardResponse
// @Failure      401   {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	s, err := ctxSession(c)
	if err != nil {
		return err
	}

	view := h.service.Resolve(c.Request().Context(), ports.DashboardInput{
		UserID:       s.UserID,
		Email:        s.Email,
		MetadataRole: s.Role,
		RouteHint:    c.QueryParam("view"),
	})

	return c.JSON(http.StatusOK, dashboardResponse{
		Role: string(view.Role),
		Tier: string(view.Tier),
		Path: view.Path,
	})
}
