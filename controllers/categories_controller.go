package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ToeMom/GroupUp-Final/services"
)

// ---------------- CREATE ----------------
func AddCategory(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.Add(c.Request.Context(), callerID(c), input.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ---------------- DELETE ----------------
func DeleteCategory(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}

// ---------------- READ ----------------
func ListCategories(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
