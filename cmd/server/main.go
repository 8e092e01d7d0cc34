package main

import (
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/admin"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/auth"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/category"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/community"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/config"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/like"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/middleware"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/moderation"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/notification"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/poll"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/post"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/report"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/storage"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("SUPABASE_DB_URL ausente")
	}

	database.Connect(cfg.DBUrl)

	if err := storage.InitS3(); err != nil {
		logs.LogJSON("WARN", "S3 unavailable, media uploads disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}

	authorizer := moderation.NewAuthorizer(cfg, database.DB)
	modSvc := moderation.NewService(database.DB, authorizer,
		moderation.ParsePolicy(os.Getenv("DELETION_POLICY")))
	adminHandler := admin.NewHandler(modSvc)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Cadastro & Login
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)

	// Leitura pública do feed
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware())
	public.GET("/posts", post.GetPosts)
	public.GET("/posts/:id", post.GetPostByID)
	public.GET("/posts/:id/comments", post.GetCommentsByPostID)
	public.GET("/posts/:id/likes", like.GetLikeStatus)
	public.GET("/polls/:id/results", poll.GetPollResults)
	public.GET("/categories", category.GetCategories)
	public.GET("/communities", community.GetCommunities)
	public.GET("/users/:username", user.GetUserByUsername)

	// Rotas autenticadas
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("/me", user.GetMe)
	authed.PUT("/me", user.UpdateMe)
	authed.GET("/me/posts", post.GetUserPosts)
	authed.POST("/posts", post.CreatePost)
	authed.DELETE("/posts/:id", moderation.DeleteOwnPost)
	authed.POST("/posts/:id/like", like.ToggleLike)
	authed.POST("/comments", post.CreateComment)
	authed.DELETE("/comments/:id", post.DeleteComment)
	authed.POST("/polls/:id/vote", poll.VotePoll)
	authed.POST("/reports", report.CreateReport)
	authed.POST("/communities/:id/join", community.JoinCommunity)
	authed.DELETE("/communities/:id/join", community.LeaveCommunity)
	authed.POST("/notifications", notification.CreateNotification)
	authed.GET("/notifications", notification.GetNotifications)
	authed.PUT("/notifications/:id/read", notification.MarkNotificationRead)

	// Rotas administrativas
	adminRoutes := api.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware())
	adminRoutes.Use(middleware.AdminOnlyMiddleware(authorizer))
	adminRoutes.GET("/stats", adminHandler.GetDashboardStats)
	adminRoutes.DELETE("/posts/:id", adminHandler.DeletePost)
	adminRoutes.DELETE("/users/:id/posts", adminHandler.DeleteUserPosts)
	adminRoutes.PUT("/posts/:id/category", adminHandler.UpdatePostCategory)
	adminRoutes.PUT("/posts/:id/trending", adminHandler.SetTrending)
	adminRoutes.GET("/reports", adminHandler.GetReports)
	adminRoutes.PUT("/reports/:id", adminHandler.UpdateReport)
	adminRoutes.POST("/categories", category.CreateCategory)
	adminRoutes.DELETE("/categories/:id", category.DeleteCategory)
	adminRoutes.POST("/communities", community.CreateCommunity)

	if err := r.Run(":" + cfg.Port); err != nil {
		return
	}
}
