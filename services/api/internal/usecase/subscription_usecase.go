package usecase

import (
	"context"
	"fmt"

	"craftledger/pkg/logger"
	"craftledger/pkg/store"
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/repo/persistent"
)

type SubscriptionUseCase interface {
	Subscribe(ctx context.Context, userID, tierID string) (*entity.Subscription, error)
}

type subscriptionUseCase struct {
	store  store.Store
	logger *logger.Logger
}

func NewSubscriptionUseCase(st store.Store, logger *logger.Logger) SubscriptionUseCase {
	return &subscriptionUseCase{
		store:  st,
		logger: logger,
	}
}

// Subscribe activates the user's single subscription with the tier's creator,
// replacing whatever tier it held before.
func (uc *subscriptionUseCase) Subscribe(ctx context.Context, userID, tierID string) (*entity.Subscription, error) {
	var sub entity.Subscription
	err := uc.store.Tx(ctx, func(ctx context.Context, s store.Session) error {
		repos := persistent.NewRepos(s)

		tier, found, err := repos.Tiers.Find(ctx, tierID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", entity.ErrTierNotFound, tierID)
		}

		id := entity.SubscriptionID(userID, tier.CreatorID)
		sub, err = repos.Subscriptions.Mutate(ctx, id, func(cur entity.Subscription) (entity.Subscription, error) {
			cur.UserID = userID
			cur.CreatorID = tier.CreatorID
			cur.TierID = tier.ID
			cur.Active = true
			return cur, nil
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	uc.logger.Info("User %s subscribed to creator %s on tier %s", userID, sub.CreatorID, sub.TierID)
	return &sub, nil
}
