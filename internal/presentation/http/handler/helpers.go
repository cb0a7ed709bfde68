package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// sessionCookie is the cookie the storefront stores the marketplace session
// token in when it cannot use the Authorization header
const sessionCookie = "marketplace-session"

// SessionToken extracts the caller's marketplace session token. The token is
// forwarded to the backend as-is; this server never mints session tokens.
func SessionToken(c *gin.Context) string {
	authHeader := c.GetHeader("X-Marketplace-Authorization")
	if authHeader == "" {
		authHeader = c.GetHeader("Authorization")
	}
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie
	}
	return ""
}
