package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"new-recruitment-api/config"
	_ "new-recruitment-api/docs" // Important for Swagger
	"new-recruitment-api/internal/delivery/http/handler"
	"new-recruitment-api/internal/repository/postgres"
	"new-recruitment-api/internal/usecase"
	"new-recruitment-api/pkg/database"
	"new-recruitment-api/pkg/legacy"
	"new-recruitment-api/pkg/logger"
	"new-recruitment-api/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           New Recruitment API
// @version         1.0
// @description     Candidate management service bridging the new recruitment stack and the legacy system.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting recruitment API", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	jobOfferRepo := postgres.NewJobOfferRepository(dbPool)

	// 6. Setup Legacy API client
	legacyClient := legacy.NewClient(cfg.LegacyAPIURL, cfg.LegacyAPIKey)

	// 7. Setup UseCases
	validate := validator.New()
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobOfferRepo, legacyClient, validate, cfg.CandidatesPerPage)

	// 8. Setup Router
	router := handler.NewRouter(handler.RouterDeps{
		CandidateUC: candidateUC,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
