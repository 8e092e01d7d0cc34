package like

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/notification"
)

// ToggleLike POST /api/posts/:id/like
func ToggleLike(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	postID := c.Param("id")

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	// O post precisa existir
	var postAuthor string
	if err := database.DB.Table("posts").Select("user_id").
		Where("id = ?", postID).Scan(&postAuthor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de banco de dados"})
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}
	if postAuthor == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado"})
		return
	}

	// O usuário já curtiu esse post?
	var existingLike Like
	err := database.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&existingLike).Error

	if err == nil {
		// A curtida existe, remove (unlike)
		if err := database.DB.Delete(&existingLike).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover a curtida"})
			logs.LogJSON("ERROR", "Error when unliking", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
				"postID": postID,
			})
			return
		}
	} else if err == gorm.ErrRecordNotFound {
		// A curtida não existe, cria
		newLike := Like{
			ID:        uuid.New().String(),
			CreatedAt: time.Now(),
			UserID:    userID,
			PostID:    postID,
		}

		if err := database.DB.Create(&newLike).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao curtir"})
			logs.LogJSON("ERROR", "Error when liking", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
				"postID": postID,
			})
			return
		}

		// Avisa o autor, melhor esforço; curtida no próprio post não notifica
		if postAuthor != userID {
			if err := notification.Insert(database.DB, postAuthor,
				notification.TypeLike, "Alguém curtiu seu post", postID); err != nil {
				logs.LogJSON("WARN", "Could not notify like", map[string]interface{}{
					"error":  err.Error(),
					"postID": postID,
				})
			}
		}
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de banco de dados"})
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	response := getLikeStatus(postID, userID)
	c.JSON(http.StatusOK, response)
}

// GetLikeStatus GET /api/posts/:id/likes
func GetLikeStatus(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id") // Pode ser vazio se não logado

	var postCount int64
	if err := database.DB.Table("posts").Where("id = ?", postID).Count(&postCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de banco de dados"})
		return
	}
	if postCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado"})
		return
	}

	response := getLikeStatus(postID, userID)
	c.JSON(http.StatusOK, response)
}

// Função utilitária para obter o status de curtidas de um post
func getLikeStatus(postID, userID string) LikeResponse {
	var likeCount int64
	database.DB.Model(&Like{}).Where("post_id = ?", postID).Count(&likeCount)

	var isLiked bool
	if userID != "" {
		var existingLike Like
		err := database.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&existingLike).Error
		isLiked = (err == nil)
	}

	return LikeResponse{
		PostID:    postID,
		LikeCount: likeCount,
		IsLiked:   isLiked,
	}
}
