package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cyclerise/cyclerise-backend/internal/clients/redis"
	"github.com/cyclerise/cyclerise-backend/internal/db"
	"github.com/cyclerise/cyclerise-backend/internal/handlers"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/middleware"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/seed"
	"github.com/cyclerise/cyclerise-backend/internal/server"
	"github.com/cyclerise/cyclerise-backend/internal/services"
	"github.com/cyclerise/cyclerise-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	tokenTTLSeconds := utils.GetEnvAsInt("TOKEN_TTL", 7*24*3600, log)
	adminEmails := utils.GetEnvAsSet("ADMIN_EMAILS", log)
	redisURL := utils.GetEnv("REDIS_URL", "", log)
	seedOnStart := utils.GetEnvAsBool("SEED_ON_START", logMode != "production", log)
	allowOrigins := strings.Split(utils.GetEnv("FRONTEND_URLS", "", log), ",")

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Redis cache. The app runs fine without it; reads just skip the cache.
	var cache *redis.Cache
	if redisURL != "" {
		cache, err = redis.NewCache(log, redisURL)
		if err != nil {
			log.Warn("Redis init failed, continuing without cache", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(thePG, log)
	subjectRepo := repos.NewSubjectRepo(thePG, log)
	progressRepo := repos.NewProgressRepo(thePG, log)
	feedbackRepo := repos.NewFeedbackRepo(thePG, log)
	bugRepo := repos.NewBugReportRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	progressService := services.NewProgressService(thePG, log, progressRepo)
	authService := services.NewAuthService(thePG, log, userRepo, progressService, jwtSecretKey, time.Duration(tokenTTLSeconds)*time.Second, adminEmails)
	subjectService := services.NewSubjectService(thePG, log, subjectRepo, progressRepo, progressService, cache)
	feedbackService := services.NewFeedbackService(thePG, log, feedbackRepo, cache)
	bugService := services.NewBugService(thePG, log, bugRepo)

	// Seed
	if seedOnStart {
		if err := seed.NewSeeder(log, subjectRepo).Run(context.Background()); err != nil {
			log.Warn("Seeding failed", "error", err)
		}
	}

	// Handlers
	log.Info("Setting up handlers...")
	authHandler := handlers.NewAuthHandler(authService)
	subjectHandler := handlers.NewSubjectHandler(log, subjectService)
	progressHandler := handlers.NewProgressHandler(progressService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	bugHandler := handlers.NewBugHandler(bugService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router...")
	var origins []string
	for _, o := range allowOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:     authHandler,
		SubjectHandler:  subjectHandler,
		ProgressHandler: progressHandler,
		FeedbackHandler: feedbackHandler,
		BugHandler:      bugHandler,
		AuthMiddleware:  authMiddleware,
		AllowOrigins:    origins,
	})

	port := utils.GetEnv("PORT", "5000", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
