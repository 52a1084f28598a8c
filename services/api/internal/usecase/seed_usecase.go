package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"craftledger/pkg/logger"
	"craftledger/pkg/store"
	"craftledger/services/api/internal/repo/persistent"
)

type SeedUseCase interface {
	EnsureSeed(ctx context.Context) error
}

type seedUseCase struct {
	store  store.Store
	logger *logger.Logger
	done   atomic.Bool
}

func NewSeedUseCase(st store.Store, logger *logger.Logger) SeedUseCase {
	return &seedUseCase{
		store:  st,
		logger: logger,
	}
}

// EnsureSeed seeds every kind in one transaction. After the first success it
// returns without touching the store.
func (uc *seedUseCase) EnsureSeed(ctx context.Context) error {
	if uc.done.Load() {
		return nil
	}

	err := uc.store.Tx(ctx, func(ctx context.Context, s store.Session) error {
		return persistent.NewRepos(s).EnsureSeed(ctx)
	})
	if err != nil {
		uc.logger.Error("Failed to seed store: %v", err)
		return fmt.Errorf("failed to seed store: %w", err)
	}

	if uc.done.CompareAndSwap(false, true) {
		uc.logger.Info("Store seeded")
	}
	return nil
}
