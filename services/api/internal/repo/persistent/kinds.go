package persistent

import (
	"craftledger/pkg/store"
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/fixtures"
	"craftledger/services/api/internal/model"
)

var CreatorKind = store.Kind[model.CreatorModel]{
	Name:    "creator",
	Initial: func() model.CreatorModel { return model.CreatorModel{} },
	Seed: func() []model.CreatorModel {
		return mapAll(fixtures.Creators(), ToCreatorModel)
	},
	Key:     func(m model.CreatorModel) string { return m.ID },
	WithKey: func(m model.CreatorModel, id string) model.CreatorModel { m.ID = id; return m },
}

var ContentKind = store.Kind[model.ContentModel]{
	Name: "content",
	Initial: func() model.ContentModel {
		return model.ContentModel{
			Type:        string(entity.ContentTypePost),
			Status:      string(entity.StatusDraft),
			Attachments: []model.AttachmentModel{},
		}
	},
	Seed: func() []model.ContentModel {
		return mapAll(fixtures.Content(), ToContentModel)
	},
	Key:     func(m model.ContentModel) string { return m.ID },
	WithKey: func(m model.ContentModel, id string) model.ContentModel { m.ID = id; return m },
}

var TierKind = store.Kind[model.TierModel]{
	Name:    "tier",
	Initial: func() model.TierModel { return model.TierModel{Benefits: []string{}} },
	Seed: func() []model.TierModel {
		return mapAll(fixtures.Tiers(), ToTierModel)
	},
	Key:     func(m model.TierModel) string { return m.ID },
	WithKey: func(m model.TierModel, id string) model.TierModel { m.ID = id; return m },
}

var SubscriptionKind = store.Kind[model.SubscriptionModel]{
	Name:    "subscription",
	Initial: func() model.SubscriptionModel { return model.SubscriptionModel{} },
	Seed: func() []model.SubscriptionModel {
		return mapAll(fixtures.Subscriptions(), ToSubscriptionModel)
	},
	Key:     func(m model.SubscriptionModel) string { return m.ID },
	WithKey: func(m model.SubscriptionModel, id string) model.SubscriptionModel { m.ID = id; return m },
}

var UserTokensKind = store.Kind[model.UserTokensModel]{
	Name:    "user_tokens",
	Initial: func() model.UserTokensModel { return model.UserTokensModel{} },
	Seed: func() []model.UserTokensModel {
		return mapAll(fixtures.UserTokens(), ToUserTokensModel)
	},
	Key:     func(m model.UserTokensModel) string { return m.ID },
	WithKey: func(m model.UserTokensModel, id string) model.UserTokensModel { m.ID = id; return m },
}

var TransactionKind = store.Kind[model.TokenTransactionModel]{
	Name:    "token_transaction",
	Initial: func() model.TokenTransactionModel { return model.TokenTransactionModel{} },
	Seed: func() []model.TokenTransactionModel {
		return mapAll(fixtures.Transactions(), ToTransactionModel)
	},
	Key:     func(m model.TokenTransactionModel) string { return m.ID },
	WithKey: func(m model.TokenTransactionModel, id string) model.TokenTransactionModel { m.ID = id; return m },
}

// PayoutKind has no seed records.
var PayoutKind = store.Kind[model.PayoutModel]{
	Name:    "payout",
	Initial: func() model.PayoutModel { return model.PayoutModel{} },
	Key:     func(m model.PayoutModel) string { return m.ID },
	WithKey: func(m model.PayoutModel, id string) model.PayoutModel { m.ID = id; return m },
}
