package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
)

// UserHeader carries the opaque user identifier resolved against the
// fixed identity directory.
const UserHeader = "X-User-ID"

type ctxKey string

const userKey ctxKey = "user"

// DefaultDirectory is the fixed, small set of known identities.
func DefaultDirectory() map[string]domain.User {
	return map[string]domain.User{
		"netrunnerX": {ID: "netrunnerX", Role: domain.RoleContributor},
		"reliefAdmin": {ID: "reliefAdmin", Role: domain.RoleAdmin},
	}
}

// Identify resolves the X-User-ID header against the directory and puts
// the user on the request context. Unknown or missing identities get
// 401.
func Identify(directory map[string]domain.User, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(UserHeader)
			user, ok := directory[id]
			if !ok {
				logger.Warn("unknown identity", slog.String("user_id", id), slog.String("remote", r.RemoteAddr))
				writeError(w, http.StatusUnauthorized, "unauthorized: provide a valid X-User-ID header")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects non-admin identities with 403. Must run after
// Identify.
func AdminOnly(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			if !ok || !user.IsAdmin() {
				logger.Warn("admin-only access denied",
					slog.String("user_id", user.ID),
					slog.String("path", r.URL.Path),
				)
				writeError(w, http.StatusForbidden, "forbidden: admin role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func UserFrom(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}

// WithUser is a test helper for assembling request contexts.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
