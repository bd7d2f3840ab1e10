package middleware

import (
	"context"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/util"
	"course_dash_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator resolves a bearer token to the caller's claims.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*util.Claims, error)
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Query("token")
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Log.Debug("rejected token", zap.String("path", c.FullPath()), zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetUserInContext(c, claims)
		c.Next()
	}
}

// TryAuthMiddleware attaches the caller when a valid token is present and
// lets anonymous requests through.
func TryAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				util.SetUserInContext(c, claims)
			}
		}
		c.Next()
	}
}

// RoleMiddleware admits the listed roles; admins always pass.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := user.Role == model.Admin
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

type UserActivityRepo interface {
	UpdateLastSeen(userID uint) error
}

// ActivityMiddleware stamps the caller's last_seen_at once the handler is done.
func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if claims := util.GetUserFromContext(c); claims != nil {
			if err := repo.UpdateLastSeen(claims.UserID); err != nil {
				logger.Log.Debug("update last seen", zap.Uint("userId", claims.UserID), zap.Error(err))
			}
		}
	}
}
