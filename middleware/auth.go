package middleware

import (
	"net/http"
	"strings"

	"instrufix/models"
	"instrufix/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and sets userID/userType in the
// context. With optional set, requests without a valid token pass through
// unauthenticated instead of being rejected; handlers then see an empty
// userID. Validated sessions are cached in Redis keyed by token hash so
// repeat requests skip signature verification.
func JWTAuthMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		tokenHash := utils.HashToken(tokenString)

		cache := utils.GetAuthCacheClient()
		if session, err := utils.GetSession(cache, tokenHash); err == nil && session.Authenticated() {
			c.Set("userID", session.UserID)
			c.Set("userType", session.UserType)
			c.Next()
			return
		}

		subject, userType, err := utils.TokenClaims(tokenString)
		if err != nil {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		session := models.Session{
			Status:   models.SessionAuthenticated,
			UserID:   subject,
			UserType: userType,
		}
		if err := utils.SaveSession(cache, tokenHash, session); err != nil {
			// Cache failures only cost the next request a re-validation.
			utils.GetLogger().Warn("failed to cache session: " + err.Error())
		}

		c.Set("userID", subject)
		c.Set("userType", userType)
		c.Next()
	}
}
