package poll

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

// VotePoll POST /api/polls/:id/vote
func VotePoll(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	pollID := c.Param("id")

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	var input struct {
		OptionIndex int `json:"option_index"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	var p Poll
	if err := database.DB.First(&p, "id = ?", pollID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enquete não encontrada"})
		return
	}

	// Um voto por usuário por enquete
	var existing PollVote
	err := database.DB.Where("poll_id = ? AND user_id = ?", pollID, userID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Você já votou nessa enquete"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de banco de dados"})
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"pollID": pollID,
		})
		return
	}

	vote := PollVote{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		PollID:      pollID,
		PostID:      p.PostID,
		UserID:      userID,
		OptionIndex: input.OptionIndex,
	}
	if err := database.DB.Create(&vote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao registrar o voto"})
		logs.LogJSON("ERROR", "Error creating poll vote", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"pollID": pollID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Voto registrado com sucesso"})
}

// GetPollResults GET /api/polls/:id/results
func GetPollResults(c *gin.Context) {
	pollID := c.Param("id")

	var p Poll
	if err := database.DB.First(&p, "id = ?", pollID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enquete não encontrada"})
		return
	}

	var results []struct {
		OptionIndex int   `json:"option_index"`
		Count       int64 `json:"count"`
	}
	database.DB.Model(&PollVote{}).
		Select("option_index, COUNT(*) as count").
		Where("poll_id = ?", pollID).
		Group("option_index").
		Scan(&results)

	c.JSON(http.StatusOK, gin.H{
		"poll":    p,
		"results": results,
	})
}
