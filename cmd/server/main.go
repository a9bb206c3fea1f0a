package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"picstash/internal/auth"
	"picstash/internal/config"
	"picstash/internal/handler"
	"picstash/internal/middleware"
	"picstash/internal/repository/postgres"
	"picstash/internal/service"
	"picstash/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Token issuer/verifier
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()
	logger.Info("database connected")

	// Blob store
	blobs, err := storage.NewMinioBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create blob store: %v", err)
	}

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	imageRepo := postgres.NewImageRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	identityService := service.NewIdentityService(userRepo, tokens, logger)
	folderService := service.NewFolderService(folderRepo, logger)
	imageService := service.NewImageService(imageRepo, blobs, txManager, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(identityService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	imageHandler := handler.NewImageHandler(imageService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)

	// Folder routes
	mux.HandleFunc("GET /api/folders", folderHandler.List)
	mux.HandleFunc("POST /api/folders", folderHandler.Create)
	mux.HandleFunc("PUT /api/folders/{id}/move", folderHandler.Move)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.Delete)
	mux.HandleFunc("GET /api/folders/{id}/breadcrumbs", folderHandler.Breadcrumbs)

	// Image routes
	mux.HandleFunc("GET /api/images", imageHandler.List)
	mux.HandleFunc("POST /api/images/upload", imageHandler.Upload)
	mux.HandleFunc("PUT /api/images/{id}/move", imageHandler.Move)
	mux.HandleFunc("DELETE /api/images/{id}", imageHandler.Delete)

	// Build middleware chain, applied in reverse order (they wrap each other)
	// Order: CORS → Recovery → RateLimit → Auth → Routes
	var h http.Handler = mux
	h = middleware.Auth(tokens)(h)
	h = middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
