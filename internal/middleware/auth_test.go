package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/internal/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIdentify_KnownUserReachesHandler(t *testing.T) {
	t.Parallel()

	var seen domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFrom(r.Context())
		if !ok {
			t.Fatalf("no user on request context")
		}
		seen = user
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.Identify(middleware.DefaultDirectory(), testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/disasters", nil)
	req.Header.Set(middleware.UserHeader, "netrunnerX")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen.ID != "netrunnerX" || seen.Role != domain.RoleContributor {
		t.Fatalf("wrong user resolved: %+v", seen)
	}
}

func TestIdentify_UnknownUserGets401(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not run for unknown identity")
	})
	handler := middleware.Identify(middleware.DefaultDirectory(), testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/disasters", nil)
	req.Header.Set(middleware.UserHeader, "intruder")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unauthorized") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestIdentify_MissingHeaderGets401(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not run without identity")
	})
	handler := middleware.Identify(middleware.DefaultDirectory(), testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/disasters", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.AdminOnly(testLogger())(next)

	req := httptest.NewRequest(http.MethodPost, "/api/verify-image", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), domain.User{ID: "reliefAdmin", Role: domain.RoleAdmin}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminOnly_ContributorGets403(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not run for non-admin")
	})
	handler := middleware.AdminOnly(testLogger())(next)

	req := httptest.NewRequest(http.MethodPost, "/api/verify-image", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), domain.User{ID: "netrunnerX", Role: domain.RoleContributor}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "forbidden") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminOnly_NoIdentityGets403(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not run without identity")
	})
	handler := middleware.AdminOnly(testLogger())(next)

	req := httptest.NewRequest(http.MethodPost, "/api/verify-image", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
