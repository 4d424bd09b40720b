package api

import (
	"charity_system/internal/auth" // Authentication service
	"net/http"                     // HTTP status codes
	"time"                         // Token lifetime

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`    // Username must be provided
	Password  string `json:"password" binding:"required"`    // Password must be provided
	Email     string `json:"email" binding:"required,email"` // Email must be valid
	FirstName string `json:"first_name"`                     // Profile field
	LastName  string `json:"last_name"`                      // Profile field
	Country   string `json:"country"`                        // Profile field
	ZipCode   int    `json:"zip_code"`                       // Profile field
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RegisterHandler creates a new user account
func RegisterHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := svc.Register(c.Request.Context(), auth.RegisterRequest{
			Username:  req.Username,
			Password:  req.Password,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Country:   req.Country,
			ZipCode:   req.ZipCode,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "id": user.ID})
	}
}

// LoginHandler exchanges credentials for a token and profile summary
func LoginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		res, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":      res.Token,                                  // Access token
			"expires_at": res.ExpiresAt.UTC().Format(time.RFC3339),   // Absolute expiry
			"expires_in": int64(time.Until(res.ExpiresAt).Seconds()), // Seconds left
			"profile":    res.Profile,                                // Profile summary
		})
	}
}

// CheckUsernameHandler reports whether a username is registered
func CheckUsernameHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username")
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}
		taken, err := svc.UsernameTaken(c.Request.Context(), username)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"taken": taken})
	}
}

// CheckEmailHandler reports whether an email is registered
func CheckEmailHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		taken, err := svc.EmailTaken(c.Request.Context(), email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"taken": taken})
	}
}

// AccountHandler returns the profile of the authenticated user
func AccountHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalOrAbort(c)
		if !ok {
			return
		}
		profile, err := svc.Profile(c.Request.Context(), p.Username)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
