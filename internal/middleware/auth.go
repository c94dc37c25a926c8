package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bountyboard_backend/internal/auth"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/pkg/apperrors"
	"bountyboard_backend/pkg/contextkeys"
)

// AuthMiddleware проверяет Bearer токен и кладет идентичность в контекст
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header is required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header must be in format: Bearer <token>"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(contextkeys.UserID, claims.UserID)
		c.Set(contextkeys.UserRole, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatInt(claims.UserID, 10))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles пропускает только пользователей с одной из указанных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(contextkeys.UserRole)
		if !exists {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		role, ok := value.(models.UserRole)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
		c.Abort()
	}
}

// CallerUserID возвращает id аутентифицированного пользователя, если он есть
func CallerUserID(c *gin.Context) *int64 {
	value, exists := c.Get(contextkeys.UserID)
	if !exists {
		return nil
	}
	id, ok := value.(int64)
	if !ok {
		return nil
	}
	return &id
}

// CallerName возвращает отображаемое имя вызывающего для полей аудита
func CallerName(c *gin.Context) string {
	if value, exists := c.Get(contextkeys.UserName); exists {
		if name, ok := value.(string); ok && name != "" {
			return name
		}
	}
	return "admin"
}
