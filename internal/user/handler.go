package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
)

// GetMe GET /api/me
func GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil não encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateMe PUT /api/me
func UpdateMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
		Headline  string `json:"headline"`
		Bio       string `json:"bio"`
		Language  string `json:"language"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.AvatarURL != "" {
		updates["avatar_url"] = input.AvatarURL
	}
	if input.Headline != "" {
		updates["headline"] = input.Headline
	}
	if input.Bio != "" {
		updates["bio"] = input.Bio
	}
	if input.Language != "" {
		updates["language"] = input.Language
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&User{}).Where("id = ?", userID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o perfil"})
			return
		}
	}

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao recarregar o perfil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil atualizado com sucesso",
		"user":    u,
	})
}

// GetUserByUsername GET /api/users/:username
func GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	var u User
	if err := database.DB.First(&u, "username = ?", username).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
