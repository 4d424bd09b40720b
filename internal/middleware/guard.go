package middleware

import (
	"charity_system/internal/auth"   // Principal context helpers
	"charity_system/internal/domain" // Principal type
	"net/http"                       // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Access is the requirement an endpoint declares
type Access int

const (
	Public        Access = iota // Anyone, with or without a principal
	Authenticated               // Any valid principal, whatever its role
)

// Allow decides whether a request with the given principal may proceed.
// Roles are not consulted: the policy only separates authenticated from
// anonymous callers.
func Allow(_ domain.Principal, authenticated bool, access Access) bool {
	switch access {
	case Public:
		return true
	case Authenticated:
		return authenticated
	default:
		return false
	}
}

// Require rejects requests that do not satisfy access before any handler runs
func Require(access Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFrom(c.Request.Context()) // Get principal from context
		if !Allow(principal, ok, access) {
			// If not allowed, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next() // Proceed to the next handler
	}
}
