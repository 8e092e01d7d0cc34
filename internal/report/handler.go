package report

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/post"
)

// CreateReport POST /api/reports
func CreateReport(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input CreateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos", "details": err.Error()})
		logs.LogJSON("WARN", "Invalid report data", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	if !input.Reason.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Motivo de denúncia inválido"})
		return
	}

	// O post denunciado precisa existir
	var p post.Post
	if err := database.DB.First(&p, "id = ?", input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post denunciado não encontrado"})
		return
	}

	// Uma denúncia por usuário por post
	var existing Report
	err := database.DB.Where("reporter_id = ? AND post_id = ?", userID, input.PostID).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Você já denunciou esse post"})
		return
	}

	r := Report{
		ReporterID:  userID,
		PostID:      input.PostID,
		Reason:      input.Reason,
		Description: input.Description,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := database.DB.Create(&r).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar a denúncia"})
		logs.LogJSON("ERROR", "Error creating report", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Denúncia criada com sucesso",
		"report":  r,
	})

	logs.LogJSON("INFO", "Report created", map[string]interface{}{
		"reportID": r.ID,
		"postID":   input.PostID,
		"route":    route,
		"userID":   userID,
	})
}
