package middleware

import (
	"net/http"
	"strings"

	"cabinkeep/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates the bearer credential on protected routes.
// The hash of each issued access token is cached in Redis for its lifetime;
// a cache hit skips signature validation. On a miss (or an unreachable
// cache) the token is validated cryptographically, so an empty cache only
// costs the fast path.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		userID, err := utils.LookupAccessToken(c.Request.Context(), tokenHash)
		if err != nil {
			utils.GetLogger().Warn("Auth cache unavailable, falling back to token validation", zap.Error(err))
		}

		if userID == "" {
			userID, err = utils.ExtractIDFromToken(tokenString)
			if err != nil || userID == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}
