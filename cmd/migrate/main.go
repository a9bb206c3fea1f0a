package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"picstash/internal/config"
	"picstash/internal/repository/postgres"

	"github.com/joho/godotenv"
)

// Creates the picstash schema; with -drop, drops it first.
func main() {
	drop := flag.Bool("drop", false, "drop existing tables before creating")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// SAFETY: never drop production tables from the command line
	if *drop && cfg.Environment == "prod" {
		log.Fatalf("Refusing to drop tables in the prod environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *drop {
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop schema: %v", err)
		}
		logger.Info("schema dropped", "prefix", cfg.TablePrefix)
	}

	if err := postgres.CreateSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	logger.Info("schema created", "prefix", cfg.TablePrefix)
}
