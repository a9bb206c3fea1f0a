package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"picstash/internal/auth"
	"picstash/internal/config"
	"picstash/internal/repository/postgres"
	"picstash/internal/service"

	"github.com/joho/godotenv"
)

// Seeds a demo account with a small folder tree for local development.
func main() {
	recreate := flag.Bool("recreate", false, "drop and recreate the schema before seeding")
	username := flag.String("username", "demo", "username for the seeded account")
	password := flag.String("password", "demo", "password for the seeded account")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// SAFETY: never run destructive seeding against production tables
	if cfg.Environment == "prod" {
		log.Fatalf("Refusing to seed the prod environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *recreate {
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop schema: %v", err)
		}
	}
	if err := postgres.CreateSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)

	tokens := auth.NewTokens(cfg.JWTSecret, time.Hour)
	identity := service.NewIdentityService(userRepo, tokens, logger)
	folders := service.NewFolderService(folderRepo, logger)

	user, err := identity.Register(ctx, &service.RegisterRequest{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	// A small tree: two roots, one nested branch
	trips, err := folders.Create(ctx, &service.CreateFolderRequest{OwnerID: user.ID, Name: "Trips"})
	if err != nil {
		log.Fatalf("Failed to create folder: %v", err)
	}
	if _, err := folders.Create(ctx, &service.CreateFolderRequest{OwnerID: user.ID, Name: "Screenshots"}); err != nil {
		log.Fatalf("Failed to create folder: %v", err)
	}
	if _, err := folders.Create(ctx, &service.CreateFolderRequest{OwnerID: user.ID, Name: "Norway 2025", ParentID: &trips.ID}); err != nil {
		log.Fatalf("Failed to create folder: %v", err)
	}

	logger.Info("seed complete",
		"username", *username,
		"user_id", user.ID,
		"prefix", cfg.TablePrefix,
	)
}
