package api

import (
	"charity_system/internal/cases" // Case service
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// CaseRequest is the payload for creating or updating a case; goal is in minor units
type CaseRequest struct {
	Title        string `json:"title" binding:"required"` // Title must be provided
	Description  string `json:"description"`              // Description
	ImagePath    string `json:"image_path"`               // Image URL from the storage provider
	Goal         int64  `json:"goal"`                     // Validated by the service
	CategoryName string `json:"category_name"`            // Required on create
}

func (r CaseRequest) input() cases.Input {
	return cases.Input{
		Title:        r.Title,
		Description:  r.Description,
		ImagePath:    r.ImagePath,
		Goal:         r.Goal,
		CategoryName: r.CategoryName,
	}
}

// ListCasesHandler returns all cases
func ListCasesHandler(svc *cases.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cases": list})
	}
}

// GetCaseHandler returns one case
func GetCaseHandler(svc *cases.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uintParam(c, "case id", c.Param("id"))
		if !ok {
			return
		}
		found, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

// SearchCasesHandler searches titles and descriptions
func SearchCasesHandler(svc *cases.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.Search(c.Request.Context(), c.Query("query"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cases": list})
	}
}

// CasesByUserHandler returns the cases of a user
func CasesByUserHandler(svc *cases.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username")
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}
		list, err := svc.ListByOwner(c.Request.Context(), username)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cases": list})
	}
}

// CasesByCategoryHandler returns the cases of a category
func CasesByCategoryHandler(svc *cases.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := uintParam(c, "category id", c.Query("categoryId"))
		if !ok {
			return
		}
		list, err := svc.ListByCategory(c.Request.Context(), categoryID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cases": list})
	}
}

// CreateCaseHandler creates a case owned by the authenticated user
func CreateCaseHandler(svc *cases.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalOrAbort(c)
		if !ok {
			return
		}
		var req CaseRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		created, err := svc.Create(c.Request.Context(), p, req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateCaseHandler updates a case owned by the authenticated user
func UpdateCaseHandler(svc *cases.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalOrAbort(c)
		if !ok {
			return
		}
		id, ok := uintParam(c, "case id", c.Param("id"))
		if !ok {
			return
		}
		var req CaseRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		updated, err := svc.Update(c.Request.Context(), p, id, req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
