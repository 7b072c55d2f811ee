package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cleaning-marketplace-server/middleware"
	"cleaning-marketplace-server/services"
)

// statusFor maps a service error kind to its HTTP status
func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation, services.KindConflict:
		return http.StatusBadRequest
	case services.KindAuth, services.KindUnauthenticated:
		return http.StatusUnauthorized
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": message}; internal details are logged, not returned
func respondError(c *gin.Context, err error) {
	svcErr := services.AsError(err)
	if svcErr.Kind == services.KindInternal {
		middleware.RequestLogger(c).WithError(err).Error("❌ Request failed")
	}
	c.JSON(statusFor(svcErr.Kind), gin.H{"error": svcErr.Message})
}

// bindJSON decodes the request body into dst, answering 400 on malformed input
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.RequestLogger(c).WithError(err).Debug("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}
