package middlewares

import (
	"fmt"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/exceptions"
	"konsulin-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and puts the caller in the context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := models.RequestIDFromContext(r.Context())

		token := utils.BearerToken(r)
		if token == "" {
			m.Log.Info("Middlewares.Authenticate missing bearer token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		principal, err := m.Tokens.VerifyToken(r.Context(), token)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected bearer token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := models.WithPrincipal(r.Context(), *principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles lets the request through only for the given roles.
func (m *Middlewares) RequireRoles(roles ...constvars.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := models.PrincipalFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingPrincipal(nil))
				return
			}
			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %q not in %v", principal.Role, roles)))
		})
	}
}
