package middlewares

import (
	"context"
	"net/http"
	"strings"

	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/exceptions"
	"cpn-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token to a live Redis session and
// attaches it to the request context. Requests with a valid JWT but no
// surviving session are rejected; logout and remote 401s destroy sessions
// process-wide.
func (m *Middlewares) Authenticate(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get(constvars.HeaderAuthorization)
			if authHeader == "" {
				utils.BuildErrorResponse(logger, w, exceptions.ErrTokenMissing(nil))
				return
			}

			token := strings.TrimPrefix(authHeader, constvars.BearerPrefix)
			sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
			if err != nil {
				utils.BuildErrorResponse(logger, w, err)
				return
			}

			session, err := m.AuthUsecase.FindSession(r.Context(), sessionID)
			if err != nil {
				utils.BuildErrorResponse(logger, w, err)
				return
			}

			ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
			ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles guards a route subtree to the given roles. It assumes
// Authenticate already ran.
func (m *Middlewares) RequireRoles(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := sessionFrom(r.Context())
			if !ok {
				utils.BuildErrorResponse(logger, w, exceptions.ErrSessionInvalid(nil))
				return
			}
			if !allowed[session.Role] {
				utils.BuildErrorResponse(logger, w, exceptions.ErrRoleNotAllowed(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
