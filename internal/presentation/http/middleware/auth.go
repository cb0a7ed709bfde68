package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
	"github.com/sangkips/marketplace-api/pkg/utils"
)

// InternalAuthMiddleware validates the service token the storefront server
// attaches in X-Internal-Authorization. The marketplace session token in the
// regular Authorization header is left alone; it belongs to the backend, not
// to this server.
func InternalAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("X-Internal-Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Internal authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid internal authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateServiceToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired service token")
			c.Abort()
			return
		}

		c.Set("service", claims.Subject)
		c.Next()
	}
}
