package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/moderation"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/post"
)

// Handler agrupa as rotas administrativas em cima do serviço de moderação.
// As rotas já passaram pelo AdminOnlyMiddleware; ainda assim o serviço
// revalida o e-mail do admin em cada mutação.
type Handler struct {
	Svc *moderation.Service
}

func NewHandler(svc *moderation.Service) *Handler {
	return &Handler{Svc: svc}
}

// DeletePost DELETE /api/admin/posts/:id
func (h *Handler) DeletePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	adminEmail := c.GetString("admin_email")
	postID := c.Param("id")

	post.CleanupMedia(postID)

	if ok := h.Svc.DeletePost(postID, adminEmail); !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Não foi possível remover o post"})
		logs.LogJSON("WARN", "Admin post deletion failed", map[string]interface{}{
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post removido com sucesso"})

	logs.LogJSON("INFO", "Admin deleted post", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": postID,
	})
}

// DeleteUserPosts DELETE /api/admin/users/:id/posts
// Remove todos os posts de um usuário, um por um, e devolve o total.
func (h *Handler) DeleteUserPosts(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	adminEmail := c.GetString("admin_email")
	targetID := c.Param("id")

	deleted, failed := h.Svc.DeletePostsByUser(targetID, adminEmail)

	c.JSON(http.StatusOK, gin.H{
		"message": "Remoção em massa concluída",
		"deleted": deleted,
		"failed":  failed,
	})

	logs.LogJSON("INFO", "Admin bulk deletion", map[string]interface{}{
		"route":    route,
		"userID":   userID,
		"targetID": targetID,
		"deleted":  deleted,
		"failed":   failed,
	})
}

// UpdatePostCategory PUT /api/admin/posts/:id/category
// category_id vazio devolve o post ao feed principal.
func (h *Handler) UpdatePostCategory(c *gin.Context) {
	adminEmail := c.GetString("admin_email")
	postID := c.Param("id")

	var input struct {
		CategoryID string `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if ok := h.Svc.UpdatePostCategory(postID, input.CategoryID, adminEmail); !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Não foi possível atualizar a categoria"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categoria atualizada com sucesso"})
}

// SetTrending PUT /api/admin/posts/:id/trending
func (h *Handler) SetTrending(c *gin.Context) {
	adminEmail := c.GetString("admin_email")
	postID := c.Param("id")

	var input struct {
		IsTrending bool `json:"is_trending"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if ok := h.Svc.SetTrending(postID, input.IsTrending, adminEmail); !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Não foi possível atualizar o destaque"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destaque atualizado com sucesso"})
}

// GetDashboardStats GET /api/admin/stats
func (h *Handler) GetDashboardStats(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var totalUsers, totalPosts, totalLikes, totalComments int64
	var pendingReports, trendingPosts int64

	database.DB.Table("users").Count(&totalUsers)
	database.DB.Table("posts").Count(&totalPosts)
	database.DB.Table("post_likes").Count(&totalLikes)
	database.DB.Table("post_comments").Count(&totalComments)
	database.DB.Table("post_reports").Where("status = 'pending'").Count(&pendingReports)
	database.DB.Table("posts").Where("is_trending = true").Count(&trendingPosts)

	// Posts criados nos últimos 7 dias
	var recentPosts int64
	database.DB.Table("posts").
		Where("created_at > ?", time.Now().AddDate(0, 0, -7)).
		Count(&recentPosts)

	c.JSON(http.StatusOK, gin.H{"stats": gin.H{
		"total_users":     totalUsers,
		"total_posts":     totalPosts,
		"total_likes":     totalLikes,
		"total_comments":  totalComments,
		"pending_reports": pendingReports,
		"trending_posts":  trendingPosts,
		"recent_posts":    recentPosts,
	}})

	logs.LogJSON("INFO", "Admin stats retrieved", map[string]interface{}{
		"route":  route,
		"userID": userID,
	})
}
