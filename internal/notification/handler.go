package notification

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
)

// Insert grava uma notificação. Usado pelo endpoint abaixo e pelos módulos
// que disparam eventos (likes, moderação).
func Insert(db *gorm.DB, userID string, ntype NotificationType, content, relatedID string) error {
	n := Notification{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    userID,
		Type:      ntype,
		Content:   content,
		RelatedID: relatedID,
	}
	return db.Create(&n).Error
}

// CreateNotification POST /api/notifications
// Equivalente da função remota create_notification do Supabase.
func CreateNotification(c *gin.Context) {
	route := c.FullPath()
	actorID := c.GetString("user_id")

	var input CreateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos", "details": err.Error()})
		return
	}

	if !input.Type.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de notificação inválido"})
		return
	}

	if err := Insert(database.DB, input.UserID, input.Type, input.Content, input.RelatedID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar notificação"})
		logs.LogJSON("ERROR", "Error creating notification", map[string]interface{}{
			"error":   err.Error(),
			"route":   route,
			"actorID": actorID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Notificação criada com sucesso"})

	logs.LogJSON("INFO", "Notification created", map[string]interface{}{
		"route":   route,
		"actorID": actorID,
		"userID":  input.UserID,
		"type":    input.Type,
	})
}

// GetNotifications GET /api/notifications
func GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	var notifications []Notification
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar notificações"})
		return
	}

	var unread int64
	database.DB.Model(&Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkNotificationRead PUT /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	userID := c.GetString("user_id")
	notificationID := c.Param("id")

	res := database.DB.Model(&Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar notificação"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notificação não encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notificação marcada como lida"})
}
