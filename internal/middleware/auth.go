package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"epp-portal/internal/auth"
)

// AuthMiddleware guards the ordering flow. The session token is accepted
// either as a Bearer header or as the "auth-token" cookie the login endpoint
// sets; unauthorized callers are blocked before any basket or order state is
// touched. The raw token doubles as the session key for the basket store.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized. Please log in to submit orders."})
			c.Abort()
			return
		}

		if err := auth.ValidateToken(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("sessionKey", token)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie("auth-token"); err == nil {
		return cookie
	}
	return ""
}
