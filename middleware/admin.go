package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresWalter/petzone--template/models"
)

// RequireAdmin gates the admin panel routes. Runs after ValidateToken.
func RequireAdmin(c *gin.Context) {
	role, _ := c.Get("role")
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
