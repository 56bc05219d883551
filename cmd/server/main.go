package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "spartans-cricket-backend/internal/api/http"
	"spartans-cricket-backend/internal/cache"
	"spartans-cricket-backend/internal/config"
	"spartans-cricket-backend/internal/jobs"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/repository/postgres"
	"spartans-cricket-backend/internal/scheduler"
	"spartans-cricket-backend/internal/security"
	"spartans-cricket-backend/internal/service"
	"spartans-cricket-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	seed := flag.Bool("seed", false, "Seed demo roster, fixtures and achievements on start-up")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Spartans Cricket Club backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxConns)
	db.SetMaxIdleConns(cfg.Database.MaxConns)

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Test database connection
	if err := db.PingContext(startupCtx); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := postgres.EnsureSchema(startupCtx, db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	if *seed || cfg.Server.SeedDemoData {
		if err := postgres.SeedDemoData(startupCtx, store); err != nil {
			logger.Error("Failed to seed demo data", "error", err)
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Initialize Image Storage
	images, err := storage.NewLocalStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize image storage", "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}
	logger.Info("Using local image storage", "upload_dir", cfg.Storage.UploadDir)
	storageCfg := storage.Config{
		UploadDir:    cfg.Storage.UploadDir,
		BaseURL:      cfg.Storage.BaseURL,
		MaxBytes:     cfg.MaxImageBytes(),
		AllowedTypes: cfg.Storage.AllowedTypes,
	}

	// Initialize Read Cache
	var readCache cache.Cache = cache.Noop{}
	if cfg.Cache.Enabled {
		redisCache := cache.NewRedisCache(cfg.Cache)
		if err := redisCache.Ping(startupCtx); err != nil {
			// The cache is an optimisation; serve from the database instead.
			logger.Warn("Redis unavailable, read cache disabled", "address", cfg.Cache.Address, "error", err)
			redisCache.Close()
		} else {
			logger.Info("Redis read cache enabled", "address", cfg.Cache.Address, "ttl_seconds", cfg.Cache.TTLSeconds)
			defer redisCache.Close()
			readCache = redisCache
		}
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Admin.TokenSecret, cfg.TokenTTL())

	// Initialize Services
	intakeSvc := service.NewIntakeService(store.ApplicantRepository, store.PlayerRepository, images, storageCfg)
	moderationSvc := service.NewModerationService(store.ApplicantRepository, store.PlayerRepository, readCache)
	rosterSvc := service.NewRosterService(store.PlayerRepository, images, storageCfg, readCache)
	contentSvc := service.NewContentService(store.FixtureRepository, store.AchievementRepository, store.ClubStatsRepository, readCache)
	gallerySvc := service.NewGalleryService(store.GalleryRepository, images, storageCfg)
	authSvc := service.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, tokenManager)
	emailSvc := service.NewEmailService(cfg.Email)

	handler := httpapi.NewRouter(httpapi.Services{
		Intake:     intakeSvc,
		Moderation: moderationSvc,
		Roster:     rosterSvc,
		Content:    contentSvc,
		Gallery:    gallerySvc,
		Auth:       authSvc,
		Images:     images,
		Tokens:     tokenManager,
	}, httpapi.RouterConfig{
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		MaxImageBytes:     cfg.MaxImageBytes(),
	})

	// In-process moderation digest, only when cmd/cronjob is not deployed
	var cronScheduler *scheduler.Scheduler
	if cfg.Scheduler.InProcess {
		jobRunner := jobs.NewJobRunner(&jobs.Services{Moderation: moderationSvc, Email: emailSvc}, cfg)
		cronScheduler, err = scheduler.NewScheduler(jobRunner)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		cronScheduler.Start()
	} else {
		logger.Info("In-process scheduler disabled; run cmd/cronjob for the moderation digest")
	}

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal or a listener failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serveErr:
		if err != nil {
			logger.Error("HTTP server error", "error", err)
		}
	}

	// Graceful shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if cronScheduler != nil {
		cronScheduler.Stop()
	}
	logger.Info("Server stopped. Goodbye!")
}
