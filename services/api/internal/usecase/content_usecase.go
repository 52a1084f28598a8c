package usecase

import (
	"context"
	"fmt"
	"time"

	"craftledger/pkg/logger"
	"craftledger/pkg/store"
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/repo/persistent"
)

type ContentUseCase interface {
	GetContent(ctx context.Context, contentID string) (*entity.ContentItem, error)
	CreateContent(ctx context.Context, creatorID string, draft entity.ContentDraft) (*entity.ContentItem, error)
	UpdateContent(ctx context.Context, creatorID, contentID string, draft entity.ContentDraft) (*entity.ContentItem, error)
	DeleteContent(ctx context.Context, creatorID, contentID string) error
}

type contentUseCase struct {
	store  store.Store
	logger *logger.Logger
	now    func() time.Time
}

func NewContentUseCase(st store.Store, logger *logger.Logger) ContentUseCase {
	return &contentUseCase{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *contentUseCase) GetContent(ctx context.Context, contentID string) (*entity.ContentItem, error) {
	item, found, err := persistent.NewRepos(uc.store.Session()).Content.Find(ctx, contentID)
	if err != nil {
		uc.logger.Error("Failed to get content: %v", err)
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", entity.ErrContentNotFound, contentID)
	}
	return &item, nil
}

func (uc *contentUseCase) CreateContent(ctx context.Context, creatorID string, draft entity.ContentDraft) (*entity.ContentItem, error) {
	var created entity.ContentItem
	err := uc.store.Tx(ctx, func(ctx context.Context, s store.Session) error {
		repos := persistent.NewRepos(s)
		if err := ensureCreatorTier(ctx, repos, creatorID, draft.TierID); err != nil {
			return err
		}

		var err error
		created, err = repos.Content.Create(ctx, entity.ContentItem{CreatorID: creatorID}.Apply(draft, uc.now().UTC()))
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to create content: %v", err)
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	uc.logger.Info("Content %s created by %s with status %s", created.ID, creatorID, created.Status)
	return &created, nil
}

// ensureCreatorTier rejects tiers that do not exist or belong to another
// creator; content on such a tier could never be unlocked.
func ensureCreatorTier(ctx context.Context, repos *persistent.Repos, creatorID, tierID string) error {
	tier, found, err := repos.Tiers.Find(ctx, tierID)
	if err != nil {
		return err
	}
	if !found || tier.CreatorID != creatorID {
		return fmt.Errorf("%w: %s", entity.ErrTierNotFound, tierID)
	}
	return nil
}

// UpdateContent re-derives the status from the new publish date. Items owned
// by another creator are reported as not found, as are unknown tiers.
func (uc *contentUseCase) UpdateContent(ctx context.Context, creatorID, contentID string, draft entity.ContentDraft) (*entity.ContentItem, error) {
	var updated entity.ContentItem
	err := uc.store.Tx(ctx, func(ctx context.Context, s store.Session) error {
		repos := persistent.NewRepos(s)
		repo := repos.Content

		cur, found, err := repo.Find(ctx, contentID)
		if err != nil {
			return err
		}
		if !found || cur.CreatorID != creatorID {
			return fmt.Errorf("%w: %s", entity.ErrContentNotFound, contentID)
		}
		if err := ensureCreatorTier(ctx, repos, creatorID, draft.TierID); err != nil {
			return err
		}

		updated, err = repo.Mutate(ctx, contentID, func(cur entity.ContentItem) (entity.ContentItem, error) {
			return cur.Apply(draft, uc.now().UTC()), nil
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}

	uc.logger.Info("Content %s updated with status %s", contentID, updated.Status)
	return &updated, nil
}

func (uc *contentUseCase) DeleteContent(ctx context.Context, creatorID, contentID string) error {
	err := uc.store.Tx(ctx, func(ctx context.Context, s store.Session) error {
		repo := persistent.NewRepos(s).Content

		cur, found, err := repo.Find(ctx, contentID)
		if err != nil {
			return err
		}
		if !found || cur.CreatorID != creatorID {
			return fmt.Errorf("%w: %s", entity.ErrContentNotFound, contentID)
		}

		existed, err := repo.Delete(ctx, contentID)
		if err != nil {
			return err
		}
		if !existed {
			return fmt.Errorf("%w: %s", entity.ErrContentNotFound, contentID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	uc.logger.Info("Content %s deleted by %s", contentID, creatorID)
	return nil
}
