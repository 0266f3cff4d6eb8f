package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyAuth guards the admin surface with a shared key carried in the
// X-Admin-Key header. An empty configured key locks the surface entirely
// rather than leaving it open.
func AdminKeyAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Admin-Key")
		if adminKey == "" || supplied == "" ||
			subtle.ConstantTimeCompare([]byte(supplied), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
