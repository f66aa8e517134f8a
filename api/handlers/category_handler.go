package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remindkit/remindkit/api/database"
	"github.com/remindkit/remindkit/pkg/models"
	"github.com/remindkit/remindkit/pkg/repository"
)

// CreateCategoryInput DTO for creating a custom category
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory stores a new custom category.
func CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat := models.Category{Name: input.Name}
	if err := repository.NewCategories(database.DB).Create(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// ListCategories returns the merged catalog: builtin categories first, then
// stored custom ones.
func ListCategories(c *gin.Context) {
	names, err := repository.NewCategories(database.DB).CatalogNames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": names})
}
