package middleware

import (
	"charity_system/internal/auth"   // Principal context helpers
	"charity_system/internal/domain" // Principal type
	"net/http"                       // HTTP status codes
	"strings"                        // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

const bearerPrefix = "Bearer "

// TokenValidator turns a bearer token into a principal
type TokenValidator interface {
	Validate(token string) (domain.Principal, error)
}

// JWTAuthMiddleware resolves the request principal from the Authorization
// header. Requests without a bearer credential continue anonymously; a bearer
// credential that fails validation is rejected with 401 and never downgraded
// to anonymous. The principal lives only in this request's context.
func JWTAuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// No bearer credential means an anonymous request
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Next()
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)) // Extract the token string
		principal, err := tokens.Validate(tokenStr)                                 // Validate the token
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  c.FullPath(), // Route
				"error": err.Error(),  // Validation failure
			}).Warn("Rejected bearer token")
			// If validation fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal)) // Store principal in request context
		c.Next()                                                                              // Proceed to the next handler
	}
}
