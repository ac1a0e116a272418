package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"epp-portal/internal/auth"
)

// LoginInput defines the JSON for the portal password gate.
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/auth/epp.
// The portal has a single shared password; a correct guess earns a signed
// 24-hour session token, returned both as JSON and as an HTTP-only cookie.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Password != h.PortalPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := auth.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	// Same cookie the web client relies on: HTTP-only, 24h.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("auth-token", token, 24*60*60, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// CheckSession is the handler for GET /v1/auth/epp.
// It reports whether the caller currently holds a valid session, without
// ever failing the request.
func (h *Handlers) CheckSession(c *gin.Context) {
	token, err := c.Cookie("auth-token")
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	if err := auth.ValidateToken(token); err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
