package middleware

import (
	"errors"
	"net/http"
	"strings"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth validates the bearer token and attaches the caller's
// identity and role to the request context.
func Auth(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Unauthorized: No Token Provided")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			claims, err := utils.VerifyToken(jwtConfig, token)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					logger.Warn("Expired token", zap.Error(err))
					utils.ResponseUnauthorized(w, "Token Expired")
					return
				}
				logger.Warn("Invalid token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid Token")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("Token subject is not a valid user ID",
					zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid Token")
				return
			}

			role, ok := entity.ParseRole(claims.Role)
			if !ok {
				logger.Warn("Token carries unknown role",
					zap.String("user_id", userID.String()),
					zap.String("role", claims.Role))
				utils.ResponseForbidden(w, "Access Denied: Unknown Role")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects callers whose role is not admin. Must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !role.IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.String("role", string(role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Access Denied: Admins Only")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
