package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/report"
)

// GetReports GET /api/admin/reports
func (h *Handler) GetReports(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&report.Report{}).
		Preload("Reporter").
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if reason := c.Query("reason"); reason != "" {
		query = query.Where("reason = ?", reason)
	}

	var total int64
	query.Count(&total)

	var reports []report.Report
	if err := query.Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar as denúncias"})
		logs.LogJSON("ERROR", "Error fetching reports", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// UpdateReport PUT /api/admin/reports/:id
// Trata uma denúncia; com delete_post o post denunciado é removido pela
// mesma orquestração de moderação.
func (h *Handler) UpdateReport(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	adminEmail := c.GetString("admin_email")
	reportID := c.Param("id")

	var input report.UpdateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos", "details": err.Error()})
		return
	}

	if !input.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status inválido"})
		return
	}

	var r report.Report
	if err := database.DB.First(&r, "id = ?", reportID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denúncia não encontrada"})
		return
	}

	if input.DeletePost {
		if ok := h.Svc.DeletePost(r.PostID, adminEmail); ok {
			// Na remoção física a própria denúncia some junto com o post
			// (post_reports é uma das tabelas purgadas), então não há
			// linha para atualizar.
			c.JSON(http.StatusOK, gin.H{"message": "Denúncia resolvida e post removido"})
			logs.LogJSON("INFO", "Report resolved with post deletion", map[string]interface{}{
				"reportID": reportID,
				"postID":   r.PostID,
				"route":    route,
				"userID":   userID,
			})
			return
		}
		logs.LogJSON("WARN", "Could not delete reported post", map[string]interface{}{
			"reportID": reportID,
			"postID":   r.PostID,
			"route":    route,
			"userID":   userID,
		})
	}

	updates := map[string]interface{}{
		"status":     input.Status,
		"admin_note": input.AdminNote,
		"admin_id":   userID,
		"updated_at": time.Now(),
	}
	if input.Status == report.StatusResolved || input.Status == report.StatusRejected {
		now := time.Now()
		updates["resolved_at"] = &now
	}

	if err := database.DB.Model(&r).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar a denúncia"})
		logs.LogJSON("ERROR", "Error updating report", map[string]interface{}{
			"error":    err.Error(),
			"reportID": reportID,
			"route":    route,
			"userID":   userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Denúncia atualizada com sucesso"})

	logs.LogJSON("INFO", "Report updated", map[string]interface{}{
		"reportID": reportID,
		"status":   input.Status,
		"route":    route,
		"userID":   userID,
	})
}
