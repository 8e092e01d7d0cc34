package moderation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/post"
)

// DeleteOwnPost DELETE /api/posts/:id
// Remoção pelo próprio autor: mesma orquestração da remoção
// administrativa, sem passar pelo gate de admin.
func DeleteOwnPost(c *gin.Context) {
	postID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	// O post precisa existir e pertencer ao usuário
	var p post.Post
	if err := database.DB.First(&p, "id = ? AND user_id = ?", postID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado ou você não tem permissão para removê-lo"})
		return
	}

	post.CleanupMedia(postID)

	if ok := Remove(database.DB, postID); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover o post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post removido com sucesso",
	})
}
