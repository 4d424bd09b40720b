package api

import (
	"charity_system/internal/cases" // Category service
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListCategoriesHandler returns all categories
func ListCategoriesHandler(svc *cases.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, cached, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"categories": list,   // List of categories
			"cached":     cached, // Indicate response is from cache
		})
	}
}

// GetCategoryHandler returns one category
func GetCategoryHandler(svc *cases.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uintParam(c, "category id", c.Param("id"))
		if !ok {
			return
		}
		category, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
