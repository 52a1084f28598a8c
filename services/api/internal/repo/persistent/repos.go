package persistent

import (
	"context"

	"craftledger/pkg/store"
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/model"
)

type (
	CreatorRepository      = store.Repository[entity.Creator]
	ContentRepository      = store.Repository[entity.ContentItem]
	TierRepository         = store.Repository[entity.Tier]
	SubscriptionRepository = store.Repository[entity.Subscription]
	UserTokensRepository   = store.Repository[entity.UserTokens]
	TransactionRepository  = store.Repository[entity.TokenTransaction]
	PayoutRepository       = store.Repository[entity.Payout]
)

// Repos groups the entity repositories bound to one store session.
type Repos struct {
	Creators      CreatorRepository
	Content       ContentRepository
	Tiers         TierRepository
	Subscriptions SubscriptionRepository
	Tokens        UserTokensRepository
	Transactions  TransactionRepository
	Payouts       PayoutRepository

	seeders []func(context.Context) error
}

func NewRepos(s store.Session) *Repos {
	creators := store.Table(s, CreatorKind)
	content := store.Table(s, ContentKind)
	tiers := store.Table(s, TierKind)
	subs := store.Table(s, SubscriptionKind)
	tokens := store.Table(s, UserTokensKind)
	txs := store.Table(s, TransactionKind)
	payouts := store.Table(s, PayoutKind)

	return &Repos{
		Creators:      mapped(creators, CreatorKind.Key, ToCreatorEntity, ToCreatorModel),
		Content:       mapped(content, ContentKind.Key, ToContentEntity, ToContentModel),
		Tiers:         mapped(tiers, TierKind.Key, ToTierEntity, ToTierModel),
		Subscriptions: mapped(subs, SubscriptionKind.Key, ToSubscriptionEntity, ToSubscriptionModel),
		Tokens:        mapped(tokens, UserTokensKind.Key, ToUserTokensEntity, ToUserTokensModel),
		Transactions:  mapped(txs, TransactionKind.Key, ToTransactionEntity, ToTransactionModel),
		Payouts:       mapped(payouts, PayoutKind.Key, ToPayoutEntity, ToPayoutModel),
		seeders: []func(context.Context) error{
			creators.EnsureSeed,
			tiers.EnsureSeed,
			content.EnsureSeed,
			subs.EnsureSeed,
			tokens.EnsureSeed,
			txs.EnsureSeed,
			payouts.EnsureSeed,
		},
	}
}

// EnsureSeed seeds every kind that has not been seeded yet.
func (r *Repos) EnsureSeed(ctx context.Context) error {
	for _, seed := range r.seeders {
		if err := seed(ctx); err != nil {
			return err
		}
	}
	return nil
}

// mappedRepo exposes a model repository in entity terms.
type mappedRepo[E, M any] struct {
	repo     store.Repository[M]
	key      func(M) string
	toEntity func(M) E
	toModel  func(M, E) M
}

func mapped[E, M any](repo store.Repository[M], key func(M) string, toEntity func(M) E, toModel func(M, E) M) store.Repository[E] {
	return &mappedRepo[E, M]{repo: repo, key: key, toEntity: toEntity, toModel: toModel}
}

func (r *mappedRepo[E, M]) Get(ctx context.Context, id string) (E, error) {
	m, err := r.repo.Get(ctx, id)
	return r.toEntity(m), err
}

func (r *mappedRepo[E, M]) Find(ctx context.Context, id string) (E, bool, error) {
	m, found, err := r.repo.Find(ctx, id)
	return r.toEntity(m), found, err
}

func (r *mappedRepo[E, M]) Mutate(ctx context.Context, id string, fn func(E) (E, error)) (E, error) {
	m, err := r.repo.Mutate(ctx, id, func(cur M) (M, error) {
		next, err := fn(r.toEntity(cur))
		if err != nil {
			return cur, err
		}
		return r.toModel(cur, next), nil
	})
	return r.toEntity(m), err
}

func (r *mappedRepo[E, M]) Create(ctx context.Context, rec E) (E, error) {
	var base M
	m, err := r.repo.Create(ctx, r.toModel(base, rec))
	return r.toEntity(m), err
}

// Save goes through Mutate when the record carries an id so the stored
// row's created_at survives.
func (r *mappedRepo[E, M]) Save(ctx context.Context, rec E) error {
	var base M
	m := r.toModel(base, rec)
	id := r.key(m)
	if id == "" {
		return r.repo.Save(ctx, m)
	}
	_, err := r.repo.Mutate(ctx, id, func(cur M) (M, error) {
		return r.toModel(cur, rec), nil
	})
	return err
}

func (r *mappedRepo[E, M]) Delete(ctx context.Context, id string) (bool, error) {
	return r.repo.Delete(ctx, id)
}

func (r *mappedRepo[E, M]) List(ctx context.Context) ([]E, error) {
	ms, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]E, len(ms))
	for i, m := range ms {
		out[i] = r.toEntity(m)
	}
	return out, nil
}

func (r *mappedRepo[E, M]) EnsureSeed(ctx context.Context) error {
	return r.repo.EnsureSeed(ctx)
}

var _ CreatorRepository = (*mappedRepo[entity.Creator, model.CreatorModel])(nil)
