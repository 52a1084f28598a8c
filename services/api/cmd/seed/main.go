package main

import (
	"context"
	"fmt"
	"time"

	"craftledger/pkg/config"
	"craftledger/pkg/database"
	"craftledger/pkg/logger"
	"craftledger/pkg/store"
	"craftledger/services/api/internal/usecase"
)

// Seeds a migrated PostgreSQL database with the demo fixtures. Kinds that were
// seeded before are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	st := store.NewGormStore(db)
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := usecase.NewSeedUseCase(st, log).EnsureSeed(ctx); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}
