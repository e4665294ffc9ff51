package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"onibook/utils"
)

// Auth validates the bearer token and stores the caller's identity claims on
// the context. Requests with no usable capability get 401. When a sessions
// client is present, tokens whose hash is missing from the auth cache are
// treated as revoked; a down redis degrades to signature-only validation.
func Auth(sessions *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if sessions != nil {
			key := utils.AuthCachePrefix + claims.UserID
			cachedHash, err := sessions.Get(c.Request.Context(), key).Result()
			switch {
			case err == redis.Nil:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
				return
			case err != nil:
				utils.GetLogger().Warn("auth cache unavailable, accepting signed token", zap.Error(err))
			case cachedHash != utils.HashToken(tokenString):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
				return
			}
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminOnly gates mutation endpoints on the role claim set by Auth. Callers
// that authenticated without the admin role get 403.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: admins only"})
			return
		}
		c.Next()
	}
}
