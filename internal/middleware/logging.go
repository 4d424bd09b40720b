package middleware

import (
	"net/http" // HTTP status codes
	"time"     // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// LoggingMiddleware logs every response at a level chosen by status class:
// 5xx error, 4xx warn, otherwise info.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,           // HTTP method
			"path":       c.Request.URL.Path,         // Request path
			"status":     status,                     // Response status
			"bytes_sent": c.Writer.Size(),            // Response size
			"latency":    time.Since(start).String(), // Handling time
		})
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("response")
		case status >= http.StatusBadRequest:
			entry.Warn("response")
		default:
			entry.Info("response")
		}
	}
}
