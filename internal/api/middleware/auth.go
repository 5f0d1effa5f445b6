// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"job-board-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authorizationHeader = "Authorization"
	identityCtx         = "identity" // Key to store the authenticated identity in context
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. The
// verified identity is stored in the request context for downstream
// handlers.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		identity, err := services.ParseToken(headerParts[1], jwtSecret)
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set(identityCtx, identity)
		c.Next()
	}
}

// GetIdentityFromContext returns the authenticated identity stored by
// JWTAuthMiddleware.
func GetIdentityFromContext(c *gin.Context) (services.Identity, error) {
	identityAny, exists := c.Get(identityCtx)
	if !exists {
		return services.Identity{}, errors.New("identity not found in context")
	}

	identity, ok := identityAny.(services.Identity)
	if !ok {
		return services.Identity{}, errors.New("identity in context is of invalid type")
	}

	return identity, nil
}
