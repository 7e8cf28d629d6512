package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/formboard/server/internal/errors"
)

// validates the bearer token and adds user info to the request context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c)
		if !ok {
			errors.Unauthorized(c, "invalid or missing token")
			c.Abort()
			return
		}

		setUser(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware fills in user info when a valid token is present
// but lets anonymous requests through
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c); ok {
			setUser(c, claims)
		}

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	return userID.(string), true
}

func bearerClaims(c *gin.Context) (*Claims, bool) {
	header := c.GetHeader("Authorization")

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := ValidateJWT(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}

func setUser(c *gin.Context, claims *Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_name", claims.Username)
	c.Set("user_email", claims.Email)
}
