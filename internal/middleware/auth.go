// Package middleware provides reusable HTTP middleware for the API server.
package middleware

import (
	"FrameVault/internal/service"
	"FrameVault/model"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserResolver maps a bearer token to the authenticated user.
type UserResolver func(ctx context.Context, token string) (*model.User, error)

// Auth verifies the Authorization header and sets user context. Every frame
// operation passes through this gate first. Token failures are 401; a
// resolver failure that is not an authentication failure (the credential
// store being unreachable) propagates as a server error instead.
func Auth(resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			unauthorized(c)
			return
		}
		user, err := resolve(c.Request.Context(), tokenParts[1])
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				unauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
			return
		}
		c.Set("username", user.Username)
		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
}
