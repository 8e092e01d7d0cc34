package community

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
)

// GetCommunities GET /api/communities
func GetCommunities(c *gin.Context) {
	var communities []Community
	if err := database.DB.Order("name ASC").Find(&communities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar as comunidades"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"communities": communities})
}

// CreateCommunity POST /api/admin/communities (somente admin)
func CreateCommunity(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	comm := Community{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   userID,
	}

	if err := database.DB.Create(&comm).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar a comunidade"})
		logs.LogJSON("ERROR", "Error creating community", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Comunidade criada com sucesso",
		"community": comm,
	})
}

// JoinCommunity POST /api/communities/:id/join
func JoinCommunity(c *gin.Context) {
	userID := c.GetString("user_id")
	communityID := c.Param("id")

	var comm Community
	if err := database.DB.First(&comm, "id = ?", communityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comunidade não encontrada"})
		return
	}

	var existing Member
	err := database.DB.Where("user_id = ? AND community_id = ?", userID, communityID).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Você já participa dessa comunidade"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de banco de dados"})
		return
	}

	member := Member{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		UserID:      userID,
		CommunityID: communityID,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao entrar na comunidade"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Você entrou na comunidade"})
}

// LeaveCommunity DELETE /api/communities/:id/join
func LeaveCommunity(c *gin.Context) {
	userID := c.GetString("user_id")
	communityID := c.Param("id")

	res := database.DB.Where("user_id = ? AND community_id = ?", userID, communityID).
		Delete(&Member{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao sair da comunidade"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Você não participa dessa comunidade"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Você saiu da comunidade"})
}
