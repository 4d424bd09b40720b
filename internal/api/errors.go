package api

import (
	"charity_system/internal/auth"   // Principal context helpers
	"charity_system/internal/domain" // Error sentinels
	"errors"                         // Error inspection
	"net/http"                       // HTTP status codes
	"strconv"                        // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// respondError translates a core error into the client-visible response.
// Unexpected failures are logged and surfaced as an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCaseNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()}) // Message carries the offending identifier
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrBadCredentials.Error()}) // Uniform message
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(), // Route
			"error": err.Error(),  // Cause, never sent to the client
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// principalOrAbort returns the request principal, answering 401 when absent
func principalOrAbort(c *gin.Context) (domain.Principal, bool) {
	p, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return p, ok
}

// uintParam parses a positive integer from a path or query value
func uintParam(c *gin.Context, name, raw string) (uint, bool) {
	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
