package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"dealScout/business/trainer"
	"dealScout/domain"
	psqlRepo "dealScout/internal/repository/postgres"
	"dealScout/pkg/config"
	"dealScout/pkg/database"
	"dealScout/pkg/logger"
)

// Offline training entrypoint. Reads the catalog from postgres, fits a
// fresh model artifact, and writes it back. Run it from cron or by hand
// after a catalog import; the API server picks up the newest artifact on
// its next restart.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting trainer", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.AutoMigrate(&domain.ModelArtifact{}); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer timeoutCancel()

	catalogRepo := psqlRepo.NewCatalogRepository(db)
	artifactRepo := psqlRepo.NewArtifactRepository(db)

	trainerService := trainer.NewTrainerService(catalogRepo, artifactRepo)

	artifact, err := trainerService.Run(ctx)
	if err != nil {
		logger.Fatal("Training failed", "error", err)
	}

	logger.Info("Training complete",
		"version", artifact.Version,
		"rows", artifact.RowCount,
		"rmse", artifact.RMSE,
	)
}
