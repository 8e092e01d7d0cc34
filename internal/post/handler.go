package post

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/storage"
)

// CreatePost gerencia a criação de um novo post, com mídia opcional
func CreatePost(c *gin.Context) {
	route := c.FullPath()
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	categoryID := c.PostForm("category_id")
	communityID := c.PostForm("community_id")

	if title == "" && content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O post precisa de título ou conteúdo"})
		return
	}

	postID := uuid.New().String()
	newPost := Post{
		ID:        postID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		UserID:    userID.(string),
		Title:     title,
		Content:   content,
	}
	if categoryID != "" {
		newPost.CategoryID = &categoryID
	}
	if communityID != "" {
		newPost.CommunityID = &communityID
	}

	// Mídia é opcional em posts de texto
	var mediaURL string
	file, header, err := c.Request.FormFile("media")
	if err == nil {
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		validExtensions := map[string]bool{
			".jpg": true, ".jpeg": true, ".png": true,
			".gif": true, ".webp": true, ".heic": true,
			".mp4": true, ".mov": true,
		}
		if !validExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Extensão de arquivo inválida"})
			return
		}

		filename := fmt.Sprintf("post_%s%s", postID, ext)
		contentType := header.Header.Get("Content-Type")

		mediaURL, err = storage.UploadToS3(file, filename, contentType, "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no upload da mídia", "details": err.Error()})
			return
		}
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		// Se a inserção falhar, tenta remover a mídia já enviada
		if mediaURL != "" {
			urlParts := strings.Split(mediaURL, ".amazonaws.com/")
			if len(urlParts) > 1 {
				_ = storage.DeleteFromS3(urlParts[1])
			}
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar o post"})
		logs.LogJSON("ERROR", "Error creating post", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	if mediaURL != "" {
		mediaType := "image"
		if strings.HasSuffix(mediaURL, ".mp4") || strings.HasSuffix(mediaURL, ".mov") {
			mediaType = "video"
		}
		media := PostMedia{
			ID:        uuid.New().String(),
			CreatedAt: time.Now(),
			PostID:    postID,
			MediaURL:  mediaURL,
			MediaType: mediaType,
		}
		if err := database.DB.Create(&media).Error; err != nil {
			// O post já existe; a mídia fica só no S3
			logs.LogJSON("WARN", "Error saving post media row", map[string]interface{}{
				"error":  err.Error(),
				"postID": postID,
			})
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post criado com sucesso",
		"post":    newPost,
	})
}

// GetPosts recupera o feed, com filtro opcional por categoria e comunidade
func GetPosts(c *gin.Context) {
	route := c.FullPath()
	categoryID := c.Query("category_id")
	communityID := c.Query("community_id")

	posts, err := listPosts(categoryID, communityID, true)
	if err != nil {
		// Deployment sem a coluna is_deleted: desliga o filtro (só nesse
		// caso) e repete a consulta sem ele; a redação abaixo segura a
		// ponta. Erro transitório só ganha a repetição.
		DisableFilter(err)
		posts, err = listPosts(categoryID, communityID, false)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar os posts"})
		logs.LogJSON("ERROR", "Error during feed retrieval", map[string]interface{}{
			"error": err.Error(),
			"route": route,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": RedactDeleted(posts),
	})
}

// GetUserPosts recupera todos os posts de um usuário
func GetUserPosts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	var posts []Post
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar os posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": RedactDeleted(posts),
	})
}

// GetPostByID recupera um post específico pelo ID
func GetPostByID(c *gin.Context) {
	postID := c.Param("id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado"})
		return
	}

	redacted := RedactDeleted([]Post{p})

	c.JSON(http.StatusOK, gin.H{
		"post": redacted[0],
	})
}

// CleanupMedia apaga do S3 as mídias de um post, melhor esforço: falha é
// logada e a remoção no banco segue em frente.
func CleanupMedia(postID string) {
	var medias []PostMedia
	if err := database.DB.Where("post_id = ?", postID).Find(&medias).Error; err != nil {
		logs.LogJSON("WARN", "Could not list post media for cleanup", map[string]interface{}{
			"postID": postID,
			"error":  err.Error(),
		})
		return
	}

	for _, m := range medias {
		urlParts := strings.Split(m.MediaURL, ".amazonaws.com/")
		if len(urlParts) > 1 {
			if err := storage.DeleteFromS3(urlParts[1]); err != nil {
				logs.LogJSON("WARN", "Error deleting media from S3", map[string]interface{}{
					"postID": postID,
					"key":    urlParts[1],
					"error":  err.Error(),
				})
			}
		}
	}
}

// GetCommentsByPostID recupera os comentários de um post
func GetCommentsByPostID(c *gin.Context) {
	postID := c.Param("id")

	// O post precisa existir
	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado"})
		return
	}

	var comments []Comment
	if err := database.DB.Where("post_id = ?", postID).Order("created_at desc").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar os comentários"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
	})
}

// CreateComment adiciona um novo comentário
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	var input struct {
		PostID string `json:"post_id" binding:"required"`
		Text   string `json:"text" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// O post precisa existir
	var p Post
	if err := database.DB.First(&p, "id = ?", input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado"})
		return
	}

	comment := Comment{
		PostID:    input.PostID,
		UserID:    userID.(string),
		Content:   input.Text,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar o comentário"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comentário adicionado com sucesso",
		"comment": comment,
	})
}

// DeleteComment remove um comentário do próprio usuário
func DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	// O comentário precisa existir e pertencer ao usuário
	var comment Comment
	if err := database.DB.First(&comment, "id = ? AND user_id = ?", commentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comentário não encontrado ou você não tem permissão para removê-lo"})
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover o comentário"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comentário removido com sucesso",
	})
}

func listPosts(categoryID, communityID string, filterDeleted bool) ([]Post, error) {
	query := database.DB.Order("created_at DESC")
	if filterDeleted {
		query = FilterDeleted(query)
	}
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if communityID != "" {
		query = query.Where("community_id = ?", communityID)
	}

	var posts []Post
	err := query.Limit(100).Find(&posts).Error
	return posts, err
}
