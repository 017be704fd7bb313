package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/has_permission"
)

type contextKey string

const memberIDKey contextKey = "member_id"

// TokenVerifier checks a bearer token and returns its member id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token subject in the request context.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			scheme, token, ok := strings.Cut(raw, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				respondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			memberID, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), memberIDKey, memberID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MemberID returns the authenticated member id, if any.
func MemberID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(memberIDKey).(string)
	return id, ok && id != ""
}

// RequirePermission allows the request only when the authenticated member
// has at least min on section.
func RequirePermission(check *has_permission.Query, section domain.Section, min domain.PermissionLevel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			memberID, ok := MemberID(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			allowed := check.Execute(r.Context(), &has_permission.Request{
				MemberID: memberID,
				Section:  section,
				MinLevel: min,
			})
			if !allowed {
				respondError(w, http.StatusForbidden, "requires "+string(section)+":"+min.String())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
