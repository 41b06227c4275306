package main

import (
	"context"
	"errors"
	"log"
	"time"

	"billed/internal/mockstore"
	"billed/internal/models"
	"billed/internal/repository"
	"billed/pkg/config"
	"billed/pkg/logger"
	"billed/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// seedNamespace keeps fixture IDs stable across runs.
var seedNamespace = uuid.MustParse("6f1c1f0e-5b8e-4d55-9a43-2a7d7c0b9e11")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Encoding); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	billRepo := repository.NewBillRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")
	inserted, err := seedBills(ctx, billRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed bills", zap.Error(err))
	}
	appLogger.Info("Database seeding completed successfully!", zap.Int("inserted", inserted))
}

// seedBills inserts the fixture bills that are not in the database yet.
func seedBills(ctx context.Context, repo *repository.BillRepository, logger *zap.Logger) (int, error) {
	inserted := 0
	for _, fixture := range mockstore.Fixtures() {
		id := uuid.NewSHA1(seedNamespace, []byte(fixture.ID))

		_, err := repo.GetByID(ctx, id)
		if err == nil {
			logger.Info("Bill already seeded, skipping", zap.String("fixture", fixture.ID))
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return inserted, err
		}

		now := time.Now()
		bill := &models.Bill{
			ID:         id,
			Email:      fixture.Email,
			Type:       fixture.Type,
			Name:       fixture.Name,
			Amount:     fixture.Amount,
			Date:       fixture.Date,
			VAT:        fixture.VAT,
			Pct:        fixture.Pct,
			Commentary: fixture.Commentary,
			FileURL:    fixture.FileURL,
			FileName:   fixture.FileName,
			Status:     models.BillStatus(fixture.Status),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := repo.Create(ctx, bill); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
