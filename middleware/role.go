package middleware

import (
	"net/http"

	"instrufix/models"

	"github.com/gin-gonic/gin"
)

// RequireBusinessUser gates endpoints reserved for business-account owners.
// It must run after JWTAuthMiddleware.
func RequireBusinessUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType != models.UserTypeBusiness && userType != models.UserTypeAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This action requires a business account",
			})
			return
		}
		c.Next()
	}
}
