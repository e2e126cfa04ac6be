package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/assemble-platform/api-go/models"
	"github.com/assemble-platform/api-go/utils"
)

// AdminRequired loads the authenticated caller's User row and rejects the
// request unless the account exists and carries the admin flag. It must run
// after AuthMiddleware so that authentication failures take precedence.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := utils.GetUser(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		var user models.User
		err := db.Where("username = ?", claims.Username).First(&user).Error
		if err != nil || !user.IsAdmin {
			log.Printf("Unauthorized admin access attempt by: %s", claims.Username)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
