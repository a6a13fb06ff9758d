package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leap-forms-backend/config"
	_ "leap-forms-backend/docs" // Important for Swagger
	"leap-forms-backend/internal/delivery/http/middleware"
	v1 "leap-forms-backend/internal/delivery/http/v1"
	"leap-forms-backend/internal/usecase"
	"leap-forms-backend/pkg/email"
	"leap-forms-backend/pkg/i18n"
	"leap-forms-backend/pkg/logger"
	"leap-forms-backend/pkg/redis"
	"leap-forms-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// @title           LEAP Forms API
// @version         1.0
// @description     Contact and quote form backend for the LEAP by LLL website.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.InitWithWriter(os.Stdout, logger.Level(cfg.GinMode))
	logger.Log.Info("Starting forms backend", "port", cfg.Port)

	environment := "development"
	if cfg.IsProduction() {
		environment = "production"
	}
	audit := security.InitSecurityLogger("leap-forms-api", environment)
	defer func() { _ = audit.Sync() }()

	// 3. Setup Redis (optional)
	var redisPing func(ctx context.Context) error
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable - rate limiting will use in-memory fallback", "error", err)
		} else {
			redisPing = redis.HealthCheck
			defer func() { _ = redis.Close() }()
		}
	}

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not configured - form submissions will return 503")
	}

	// 5. Setup UseCases
	catalog, err := i18n.NewCatalog()
	if err != nil {
		logger.Log.Error("Failed to load message catalog", "error", err)
		os.Exit(1)
	}
	route := usecase.MailRoute{From: cfg.MailFrom, To: cfg.MailTo}
	validator := usecase.NewSubmissionValidator(catalog)
	formatter := usecase.NewSubmissionFormatter(cfg.BrandName, catalog.For(cfg.MailLocale))
	contactUC := usecase.NewContactUsecase(validator, formatter, emailService, route, audit)
	quoteUC := usecase.NewQuoteUsecase(validator, usecase.NewFeeEstimator(), formatter, emailService, route, audit)
	healthUC := usecase.NewHealthUsecase(emailService, redisPing)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		QuoteUC:     quoteUC,
		HealthUC:    healthUC,
		Catalog:     catalog,
		RateLimiter: middleware.NewRateLimiter(redis.Client(), audit),
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// leave room for the SMTP exchange inside a request
		WriteTimeout: cfg.MailTimeout + 15*time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MailTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
