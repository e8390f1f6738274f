package middleware

import (
	"net/http"

	"auberge-espagnole/internal/data/entity"
	"auberge-espagnole/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgAuthRequired = "Authentification requise"
	msgTokenInvalid = "Token invalide ou expiré"
	msgAdminOnly    = "Accès réservé aux administrateurs"
)

// Authenticate validates the bearer token and stores its claims in the request context
func Authenticate(tokens *utils.TokenManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := utils.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				utils.ResponseUnauthorized(w, msgAuthRequired)
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				logger.Warn("Rejected token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, msgTokenInvalid)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetUserContext(r.Context(), claims)))
		})
	}
}

// RequireAdmin must run after Authenticate
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, msgAuthRequired)
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if role != string(entity.RoleAdmin) {
				logger.Warn("Admin check: non-admin access attempt",
					zap.Int64("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
