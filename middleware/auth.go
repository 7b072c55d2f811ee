package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cleaning-marketplace-server/models"
	"cleaning-marketplace-server/services"
)

const (
	contextUserKey  = "user"
	contextTokenKey = "token"
)

// AuthMiddleware resolves the bearer token and sets the user in context.
// Requests without a valid session get 401 {"error":"Unauthorised"}.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorised(c)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if services.KindOf(err) != services.KindUnauthenticated {
				RequestLogger(c).WithError(err).Error("❌ Failed to authenticate request")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			abortUnauthorised(c)
			return
		}

		c.Set(contextUserKey, user)
		c.Set(contextTokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(contextUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// CurrentToken returns the bearer token that authenticated the request
func CurrentToken(c *gin.Context) string {
	return c.GetString(contextTokenKey)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func abortUnauthorised(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorised"})
}
