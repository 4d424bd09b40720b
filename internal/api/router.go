package api

import (
	"charity_system/internal/auth"       // Authentication service
	"charity_system/internal/cases"      // Case and category services
	"charity_system/internal/ledger"     // Donation ledger
	"charity_system/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

// Services are the core components the HTTP surface exposes
type Services struct {
	Auth       *auth.Service
	Tokens     *auth.TokenService
	Ledger     *ledger.Ledger
	Cases      *cases.Service
	Categories *cases.Categories
}

// NewRouter builds the gin engine. Every request passes the JWT
// authenticator; each group then declares whether it is public or requires
// an authenticated principal.
func NewRouter(s Services) *gin.Engine {
	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.LoggingMiddleware(), middleware.JWTAuthMiddleware(s.Tokens))

	public := r.Group("/api", middleware.Require(middleware.Public))
	private := r.Group("/api", middleware.Require(middleware.Authenticated))

	// Auth routes
	public.POST("/auth/register", RegisterHandler(s.Auth))           // Registration endpoint
	public.POST("/auth/login", LoginHandler(s.Auth))                 // Login endpoint
	public.GET("/auth/check-username", CheckUsernameHandler(s.Auth)) // Username availability
	public.GET("/auth/check-email", CheckEmailHandler(s.Auth))       // Email availability
	private.GET("/users/account", AccountHandler(s.Auth))            // Own profile

	// Case routes
	public.GET("/cases", ListCasesHandler(s.Cases))                   // All cases
	public.GET("/cases/search", SearchCasesHandler(s.Cases))          // Search by title or description
	public.GET("/cases/by-user", CasesByUserHandler(s.Cases))         // Cases of a user
	public.GET("/cases/by-category", CasesByCategoryHandler(s.Cases)) // Cases of a category
	public.GET("/cases/:id", GetCaseHandler(s.Cases))                 // One case
	private.POST("/cases", CreateCaseHandler(s.Cases))                // Create case
	private.PUT("/cases/:id", UpdateCaseHandler(s.Cases))             // Update own case

	// Category routes
	public.GET("/categories", ListCategoriesHandler(s.Categories))  // All categories
	public.GET("/categories/:id", GetCategoryHandler(s.Categories)) // One category

	// Donation routes
	private.POST("/donations", MakeDonationHandler(s.Ledger))               // Make donation
	public.GET("/donations/case/:caseId", CaseDonationsHandler(s.Ledger))   // Donations of a case
	public.GET("/donations/user/:username", UserDonationsHandler(s.Ledger)) // Donations of a user
	private.GET("/donations/me", MyDonationsHandler(s.Ledger))              // Own donations

	return r
}
