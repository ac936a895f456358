package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/de-scientist/Vice-Queen-Backend/auth"
	"github.com/de-scientist/Vice-Queen-Backend/models"
)

// ExtractToken pulls the session token from the cookie or the
// Authorization header, cookie first.
func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie("token"); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}

func Authenticate(c *gin.Context) {
	token := ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "No token provided"})
		c.Abort()
		return
	}

	revoked, err := auth.TokenBlacklist.IsRevoked(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check token"})
		c.Abort()
		return
	}
	if revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", claims.ID)
	c.Set("role", claims.Role)
	c.Set("token", token)
	c.Next()
}

// RequireAdmin gates admin-only routes. Must run after Authenticate.
func RequireAdmin(c *gin.Context) {
	if c.GetString("role") != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Access denied. Admins Only",
			"message": "Admin privileges required.",
		})
		c.Abort()
		return
	}
	c.Next()
}
