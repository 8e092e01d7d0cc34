package category

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
)

// GetCategories GET /api/categories
func GetCategories(c *gin.Context) {
	var categories []Category
	if err := database.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar as categorias"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory POST /api/admin/categories (somente admin)
func CreateCategory(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	cat := Category{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Name:      input.Name,
		Slug:      slugify(input.Name),
	}

	if err := database.DB.Create(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar a categoria"})
		logs.LogJSON("ERROR", "Error creating category", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Categoria criada com sucesso",
		"category": cat,
	})
}

// DeleteCategory DELETE /api/admin/categories/:id (somente admin)
// Os posts da categoria voltam para o feed principal (category_id NULL).
func DeleteCategory(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	categoryID := c.Param("id")

	var cat Category
	if err := database.DB.First(&cat, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
		return
	}

	if err := database.DB.Table("posts").Where("category_id = ?", categoryID).
		Update("category_id", nil).Error; err != nil {
		logs.LogJSON("WARN", "Could not detach posts from category", map[string]interface{}{
			"error":      err.Error(),
			"categoryID": categoryID,
		})
	}

	if err := database.DB.Delete(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover a categoria"})
		logs.LogJSON("ERROR", "Error deleting category", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categoria removida com sucesso"})
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
