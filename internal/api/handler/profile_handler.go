package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/urcontent/dashboard-service/internal/core/domain"
	"github.com/urcontent/dashboard-service/internal/core/ports"
)

// ProfileHandler handles HTTP requests for profile operations. Domain
// errors are returned as-is and mapped by the global error handler.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type upsertProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=120"`
	Role        string `json:"role"         validate:"required"`
	Bio         string `json:"bio"          validate:"max=2000"`
}

type listProfilesResponse struct {
	Items      []*domain.Profile `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// GetMine handles GET /v1/profile.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/profile [get]
func (h *ProfileHandler) GetMine(c echo.Context) error {
	s, err := ctxSession(c)
	if err != nil {
		return err
	}

	p, err := h.service.Get(c.Request().Context(), s.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// UpsertMine handles PUT /v1/profile.
//
// @Summary      Create or update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upsertProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/profile [put]
func (h *ProfileHandler) UpsertMine(c echo.Context) error {
	s, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, err := h.service.Upsert(c.Request().Context(), ports.UpsertProfileInput{
		UserID:      s.UserID,
		ActorRole:   s.Role,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		Bio:         req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// List handles GET /v1/admin/profiles.
//
// @Summary      List profiles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role   query     string  false  "Filter by role"
// @Param        page   query     int     false  "Page number (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  listProfilesResponse
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /v1/admin/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	page, err := intQuery(c, "page")
	if err != nil {
		return err
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return err
	}

	res, err := h.service.List(c.Request().Context(), ports.ListProfilesInput{
		Role:  c.QueryParam("role"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	items := res.Items
	if items == nil {
		items = []*domain.Profile{}
	}
	return c.JSON(http.StatusOK, listProfilesResponse{
		Items:      items,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	})
}

// intQuery parses an optional integer query parameter; absent means 0.
func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return n, nil
}
