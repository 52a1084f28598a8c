package usecase

import (
	"context"
	"fmt"

	"craftledger/pkg/logger"
	"craftledger/pkg/store"
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/fixtures"
	"craftledger/services/api/internal/repo/persistent"
)

type Dashboard struct {
	Creator    entity.Creator       `json:"creator"`
	Content    []entity.ContentItem `json:"content"`
	Tiers      []entity.Tier        `json:"tiers"`
	TopTippers []entity.TopTipper   `json:"topTippers"`
}

// GatedContent is a content item as seen by one subscriber.
type GatedContent struct {
	entity.ContentItem
	Locked bool `json:"locked"`
}

type CreatorPage struct {
	Creator      entity.Creator      `json:"creator"`
	Content      []GatedContent      `json:"content"`
	Tiers        []entity.Tier       `json:"tiers"`
	Subscription entity.Subscription `json:"subscription"`
}

type CreatorUseCase interface {
	Dashboard(ctx context.Context, creatorID string) (*Dashboard, error)
	PublicView(ctx context.Context, creatorID, userID string) (*CreatorPage, error)
	ListCreators(ctx context.Context) ([]entity.Creator, error)
	Analytics(ctx context.Context, creatorID string) (*entity.Analytics, error)
}

type creatorUseCase struct {
	store  store.Store
	logger *logger.Logger
}

func NewCreatorUseCase(st store.Store, logger *logger.Logger) CreatorUseCase {
	return &creatorUseCase{
		store:  st,
		logger: logger,
	}
}

func (uc *creatorUseCase) Dashboard(ctx context.Context, creatorID string) (*Dashboard, error) {
	repos := persistent.NewRepos(uc.store.Session())

	creator, err := repos.Creators.Get(ctx, creatorID)
	if err != nil {
		uc.logger.Error("Failed to get creator: %v", err)
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}

	content, err := uc.creatorContent(ctx, repos, creatorID)
	if err != nil {
		return nil, err
	}
	tiers, err := uc.creatorTiers(ctx, repos, creatorID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Creator:    creator,
		Content:    content,
		Tiers:      tiers,
		TopTippers: fixtures.TopTippers(),
	}, nil
}

func (uc *creatorUseCase) PublicView(ctx context.Context, creatorID, userID string) (*CreatorPage, error) {
	repos := persistent.NewRepos(uc.store.Session())

	creator, found, err := repos.Creators.Find(ctx, creatorID)
	if err != nil {
		uc.logger.Error("Failed to get creator: %v", err)
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", entity.ErrCreatorNotFound, creatorID)
	}

	content, err := uc.creatorContent(ctx, repos, creatorID)
	if err != nil {
		return nil, err
	}
	tiers, err := uc.creatorTiers(ctx, repos, creatorID)
	if err != nil {
		return nil, err
	}

	sub, err := repos.Subscriptions.Get(ctx, entity.SubscriptionID(userID, creatorID))
	if err != nil {
		uc.logger.Error("Failed to get subscription: %v", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	gated := make([]GatedContent, len(content))
	for i, item := range content {
		gated[i] = GatedContent{
			ContentItem: item,
			Locked:      !entity.CanView(sub, tiers, item.TierID),
		}
	}

	return &CreatorPage{
		Creator:      creator,
		Content:      gated,
		Tiers:        tiers,
		Subscription: sub,
	}, nil
}

func (uc *creatorUseCase) ListCreators(ctx context.Context) ([]entity.Creator, error) {
	creators, err := persistent.NewRepos(uc.store.Session()).Creators.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list creators: %v", err)
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}
	return creators, nil
}

// Analytics serves the static bundle; creatorID only scopes the request.
func (uc *creatorUseCase) Analytics(ctx context.Context, creatorID string) (*entity.Analytics, error) {
	analytics := fixtures.Analytics()
	return &analytics, nil
}

func (uc *creatorUseCase) creatorContent(ctx context.Context, repos *persistent.Repos, creatorID string) ([]entity.ContentItem, error) {
	all, err := repos.Content.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list content: %v", err)
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	content := make([]entity.ContentItem, 0, len(all))
	for _, item := range all {
		if item.CreatorID == creatorID {
			content = append(content, item)
		}
	}
	return content, nil
}

func (uc *creatorUseCase) creatorTiers(ctx context.Context, repos *persistent.Repos, creatorID string) ([]entity.Tier, error) {
	all, err := repos.Tiers.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list tiers: %v", err)
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}

	tiers := make([]entity.Tier, 0, len(all))
	for _, t := range all {
		if t.CreatorID == creatorID {
			tiers = append(tiers, t)
		}
	}
	entity.SortTiers(tiers)
	return tiers, nil
}
