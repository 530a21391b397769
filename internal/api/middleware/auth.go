package middleware

import (
	"context"
	"net/http"
	"strings"

	"holiday_tracker/internal/common"
	"holiday_tracker/internal/common/security"
	"holiday_tracker/internal/domain/model"
	"holiday_tracker/internal/platform/session"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	PrincipalCtxKey contextKey = "principal"
	SessionIDCtxKey contextKey = "sessionID"
)

// Authenticator requires a signed session token whose session record is still
// live in the store. The store record is authoritative for user id and role,
// so a logged-out token is rejected even before its signature expires.
func Authenticator(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if strings.Contains(err.Error(), "token not found") || token == nil {
					common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
				} else {
					common.RespondWithError(w, http.StatusUnauthorized, "Invalid token: "+err.Error())
				}
				return
			}

			if token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			sid, err := security.GetSessionIDFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
				return
			}

			sess, err := sessions.Get(r.Context(), sid)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Session expired or logged out")
				return
			}

			principal := model.Principal{UserID: sess.UserID, Role: sess.Role}
			ctx := context.WithValue(r.Context(), PrincipalCtxKey, principal)
			ctx = context.WithValue(ctx, SessionIDCtxKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose principal holds none of the given roles.
// The denial is explicit (403 with an error body), not a silent redirect.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipalFromContext(r.Context())
			if !ok {
				common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
				return
			}
			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			common.RespondWithError(w, http.StatusForbidden, "Insufficient role for this action")
		})
	}
}

// Helper to get the principal from context
func GetPrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(model.Principal)
	return principal, ok
}

// Helper to get the session id from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(SessionIDCtxKey).(string)
	return sid, ok
}
