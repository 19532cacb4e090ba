package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"physiowell-web/config"
	_ "physiowell-web/docs" // Important for Swagger
	v1 "physiowell-web/internal/delivery/http/v1"
	"physiowell-web/internal/usecase"
	"physiowell-web/pkg/analytics"
	"physiowell-web/pkg/email"
	"physiowell-web/pkg/flash"
	"physiowell-web/pkg/logger"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           PhysioWell Website API
// @version         1.0
// @description     JSON endpoints of the PhysioWell practice website.
// @host            localhost:5000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Env)
	logger.Log.Info("Starting website", "env", cfg.Env, "port", cfg.Port)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email credentials not configured - submissions will be accepted but not emailed")
	}

	// 4. Setup Conversion Tracker
	tracker := analytics.NewTracker(cfg.SiteName, cfg.Env)
	defer tracker.Sync()

	// 5. Setup UseCases
	validate := validator.New()
	submissionUC := usecase.NewSubmissionUsecase(emailService, cfg.ContactEmailTo, validate)
	conversionUC := usecase.NewConversionUsecase(tracker)
	healthUC := usecase.NewHealthUsecase(emailService)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		ConversionUC: conversionUC,
		HealthUC:     healthUC,
		Flashes:      flash.NewStore(cfg.SecretKey, cfg.IsProduction()),
		Config:       cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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
