package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cleaning-marketplace-server/utils"
)

const (
	requestIDHeader   = "X-Request-ID"
	contextRequestKey = "request_id"
)

// Logger assigns a request id and logs each request once it has been served
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(contextRequestKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		entry := RequestLogger(c).WithFields(logrus.Fields{
			"status":   status,
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
		})

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// Recovery turns panics into a 500 JSON response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				RequestLogger(c).WithField("panic", rec).Error("💥 Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}

// RequestLogger returns a log entry tagged with the request's method, path and id
func RequestLogger(c *gin.Context) *logrus.Entry {
	return utils.Logger.WithFields(logrus.Fields{
		"request_id": c.GetString(contextRequestKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	})
}
