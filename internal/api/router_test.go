package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/urcontent/dashboard-service/internal/api/handler"
	"github.com/urcontent/dashboard-service/internal/core/domain"
	"github.com/urcontent/dashboard-service/internal/core/ports"
)

const testSecret = "test-secret"

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAuth struct{}

func (stubAuth) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	return &domain.User{ID: "u-new", Email: in.Email}, nil
}

func (stubAuth) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

type stubProfiles struct {
	profiles map[string]*domain.Profile
}

func (s *stubProfiles) Get(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (s *stubProfiles) Upsert(_ context.Context, in ports.UpsertProfileInput) (*domain.Profile, error) {
	if in.Role == "admin" && in.ActorRole != "admin" {
		return nil, domain.ErrForbidden
	}
	if in.Role == "boom" {
		return nil, errors.New("disk on fire")
	}
	p := &domain.Profile{UserID: in.UserID, DisplayName: in.DisplayName, Role: domain.Role(in.Role)}
	s.profiles[in.UserID] = p
	return p, nil
}

func (s *stubProfiles) List(context.Context, ports.ListProfilesInput) (*ports.ListProfilesResult, error) {
	items := make([]*domain.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		items = append(items, p)
	}
	return &ports.ListProfilesResult{Items: items, Total: int64(len(items)), Page: 1, Limit: 20, TotalPages: 1}, nil
}

func (s *stubProfiles) RoleOf(_ context.Context, userID string) (string, error) {
	if p, ok := s.profiles[userID]; ok {
		return string(p.Role), nil
	}
	return "", nil
}

type stubDashboard struct {
	profiles *stubProfiles
}

func (s stubDashboard) Resolve(ctx context.Context, in ports.DashboardInput) ports.DashboardView {
	profileRole, _ := s.profiles.RoleOf(ctx, in.UserID)
	res := domain.ResolveRole(domain.ActorIdentity{
		RouteHint:           in.RouteHint,
		ProfileRole:         profileRole,
		SessionMetadataRole: in.MetadataRole,
		EmailAddress:        in.Email,
	})
	return ports.DashboardView{Role: res.Role, Tier: res.Tier, Path: res.Role.DashboardPath()}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestRouter(t *testing.T) (*echo.Echo, *stubProfiles) {
	t.Helper()
	profiles := &stubProfiles{profiles: map[string]*domain.Profile{}}
	reg := prometheus.NewRegistry()
	e := NewRouter(Dependencies{
		AuthService:      stubAuth{},
		ProfileService:   profiles,
		DashboardService: stubDashboard{profiles: profiles},
		HealthChecks: map[string]handler.DependencyCheck{
			"mongodb": func(context.Context) error { return nil },
		},
		JWTSecret:  testSecret,
		Logger:     zerolog.Nop(),
		Registerer: reg,
		Gatherer:   reg,
	})
	return e, profiles
}

func bearer(t *testing.T, sub, email, role string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func do(e *echo.Echo, method, target, auth, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRouter_DashboardRequiresAuth(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/v1/dashboard", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if decode(t, rec)["error"] != "missing authorization header" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_DashboardResolution(t *testing.T) {
	e, _ := newTestRouter(t)
	auth := bearer(t, "u1", "admin@business.com", "")

	rec := do(e, http.MethodGet, "/v1/dashboard", auth, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["role"] != "admin" || body["tier"] != "email" {
		t.Fatalf("unexpected resolution: %v", body)
	}

	// Creating a profile makes it outrank the email heuristic.
	rec = do(e, http.MethodPut, "/v1/profile", auth, `{"display_name":"Ana","role":"creator"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on profile upsert, got %d: %s", rec.Code, rec.Body.String())
	}

	body = decode(t, do(e, http.MethodGet, "/v1/dashboard", auth, ""))
	if body["role"] != "creator" || body["tier"] != "profile" {
		t.Fatalf("unexpected resolution after profile: %v", body)
	}

	body = decode(t, do(e, http.MethodGet, "/v1/dashboard?view=business", auth, ""))
	if body["role"] != "business" || body["tier"] != "route_hint" || body["path"] != "/dashboard/business" {
		t.Fatalf("unexpected resolution with hint: %v", body)
	}
}

func TestRouter_ErrorMapping(t *testing.T) {
	e, _ := newTestRouter(t)
	auth := bearer(t, "u2", "x@example.com", "creator")

	if rec := do(e, http.MethodGet, "/v1/profile", auth, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing profile, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPut, "/v1/profile", auth, `{"display_name":"X","role":"admin"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin self-assignment, got %d", rec.Code)
	}
	rec := do(e, http.MethodPut, "/v1/profile", auth, `{"display_name":"X","role":"boom"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unexpected error, got %d", rec.Code)
	}
	if decode(t, rec)["error"] != "internal server error" {
		t.Fatalf("internal error details must not leak: %s", rec.Body.String())
	}
}

func TestRouter_AdminRoutesUseAccountRole(t *testing.T) {
	e, _ := newTestRouter(t)

	// An admin-looking email is not an authorization signal.
	creator := bearer(t, "u3", "admin@example.com", "creator")
	if rec := do(e, http.MethodGet, "/v1/admin/profiles", creator, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	admin := bearer(t, "root", "root@example.com", "admin")
	rec := do(e, http.MethodGet, "/v1/admin/profiles", admin, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_PublicEndpoints(t *testing.T) {
	e, _ := newTestRouter(t)

	if rec := do(e, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health/ready, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/auth/login", "", `{"email":"a@example.com","password":"x"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from login, got %d", rec.Code)
	}
}
