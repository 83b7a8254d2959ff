package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cyclerise/cyclerise-backend/internal/handlers"
	"github.com/cyclerise/cyclerise-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	SubjectHandler  *handlers.SubjectHandler
	ProgressHandler *handlers.ProgressHandler
	FeedbackHandler *handlers.FeedbackHandler
	BugHandler      *handlers.BugHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AllowOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")

	// Public
	api.GET("/health", handlers.HealthCheck)
	api.POST("/auth/register", cfg.AuthHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)
	api.POST("/auth/admin/login", cfg.AuthHandler.AdminLogin)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.GET("/auth/profile", cfg.AuthHandler.GetProfile)
	protected.POST("/auth/switch-branch", cfg.AuthHandler.SwitchBranch)

	protected.GET("/subjects/branch/:branch", cfg.SubjectHandler.GetSubjectsByBranch)
	protected.GET("/subjects/:subjectId", cfg.SubjectHandler.GetSubjectByID)
	protected.POST("/subjects/question/complete", cfg.SubjectHandler.ToggleQuestionCompletion)

	protected.GET("/progress", cfg.ProgressHandler.GetUserProgress)
	protected.GET("/progress/branch/:branch", cfg.ProgressHandler.GetProgressByBranch)

	protected.POST("/feedback", cfg.FeedbackHandler.Create)
	protected.GET("/feedback/mine", cfg.FeedbackHandler.GetMyLatest)

	protected.POST("/bugs", cfg.BugHandler.Create)

	// Admin
	admin := protected.Group("/")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())

	admin.GET("/auth/users", cfg.AuthHandler.ListUsers)
	admin.GET("/feedback", cfg.FeedbackHandler.List)
	admin.GET("/feedback/stats", cfg.FeedbackHandler.Stats)
	admin.GET("/bugs", cfg.BugHandler.List)
	admin.PATCH("/bugs/:id/status", cfg.BugHandler.UpdateStatus)

	return router
}
