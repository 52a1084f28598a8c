package persistent

import (
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/model"
)

// The To*Model mappers write entity fields onto base so that columns the
// entity does not carry (created_at) survive a round trip.

func ToCreatorEntity(m model.CreatorModel) entity.Creator {
	return entity.Creator{
		ID:      m.ID,
		Name:    m.Name,
		Bio:     m.Bio,
		Avatar:  m.Avatar,
		Balance: m.Balance,
	}
}

func ToCreatorModel(base model.CreatorModel, e entity.Creator) model.CreatorModel {
	base.ID = e.ID
	base.Name = e.Name
	base.Bio = e.Bio
	base.Avatar = e.Avatar
	base.Balance = e.Balance
	return base
}

func ToContentEntity(m model.ContentModel) entity.ContentItem {
	attachments := make([]entity.Attachment, len(m.Attachments))
	for i, a := range m.Attachments {
		attachments[i] = entity.Attachment{URL: a.URL, Name: a.Name}
	}
	return entity.ContentItem{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Description: m.Description,
		Type:        entity.ContentType(m.Type),
		TierID:      m.TierID,
		PublishedAt: m.PublishedAt,
		Status:      entity.ContentStatus(m.Status),
		Attachments: attachments,
	}
}

func ToContentModel(base model.ContentModel, e entity.ContentItem) model.ContentModel {
	attachments := make([]model.AttachmentModel, len(e.Attachments))
	for i, a := range e.Attachments {
		attachments[i] = model.AttachmentModel{URL: a.URL, Name: a.Name}
	}
	base.ID = e.ID
	base.CreatorID = e.CreatorID
	base.Title = e.Title
	base.Description = e.Description
	base.Type = string(e.Type)
	base.TierID = e.TierID
	base.PublishedAt = e.PublishedAt
	base.Status = string(e.Status)
	base.Attachments = attachments
	return base
}

func ToTierEntity(m model.TierModel) entity.Tier {
	benefits := make([]string, len(m.Benefits))
	copy(benefits, m.Benefits)
	return entity.Tier{
		ID:        m.ID,
		CreatorID: m.CreatorID,
		Name:      m.Name,
		Price:     m.Price,
		Rank:      m.Rank,
		Benefits:  benefits,
	}
}

func ToTierModel(base model.TierModel, e entity.Tier) model.TierModel {
	benefits := make([]string, len(e.Benefits))
	copy(benefits, e.Benefits)
	base.ID = e.ID
	base.CreatorID = e.CreatorID
	base.Name = e.Name
	base.Price = e.Price
	base.Rank = e.Rank
	base.Benefits = benefits
	return base
}

func ToSubscriptionEntity(m model.SubscriptionModel) entity.Subscription {
	return entity.Subscription{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatorID: m.CreatorID,
		TierID:    m.TierID,
		Active:    m.Active,
	}
}

func ToSubscriptionModel(base model.SubscriptionModel, e entity.Subscription) model.SubscriptionModel {
	base.ID = e.ID
	base.UserID = e.UserID
	base.CreatorID = e.CreatorID
	base.TierID = e.TierID
	base.Active = e.Active
	return base
}

func ToUserTokensEntity(m model.UserTokensModel) entity.UserTokens {
	return entity.UserTokens{
		UserID:  m.ID,
		Balance: m.Balance,
	}
}

func ToUserTokensModel(base model.UserTokensModel, e entity.UserTokens) model.UserTokensModel {
	base.ID = e.UserID
	base.Balance = e.Balance
	return base
}

func ToTransactionEntity(m model.TokenTransactionModel) entity.TokenTransaction {
	return entity.TokenTransaction{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatorID: m.CreatorID,
		Amount:    m.Amount,
		Reason:    m.Reason,
		Ts:        m.Ts,
	}
}

func ToTransactionModel(base model.TokenTransactionModel, e entity.TokenTransaction) model.TokenTransactionModel {
	base.ID = e.ID
	base.UserID = e.UserID
	base.CreatorID = e.CreatorID
	base.Amount = e.Amount
	base.Reason = e.Reason
	base.Ts = e.Ts
	return base
}

func ToPayoutEntity(m model.PayoutModel) entity.Payout {
	return entity.Payout{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Amount:      m.Amount,
		Status:      entity.PayoutStatus(m.Status),
		RequestedAt: m.RequestedAt,
	}
}

func ToPayoutModel(base model.PayoutModel, e entity.Payout) model.PayoutModel {
	base.ID = e.ID
	base.CreatorID = e.CreatorID
	base.Amount = e.Amount
	base.Status = string(e.Status)
	base.RequestedAt = e.RequestedAt
	return base
}

func mapAll[E, M any](in []E, fn func(M, E) M) []M {
	out := make([]M, len(in))
	var zero M
	for i, e := range in {
		out[i] = fn(zero, e)
	}
	return out
}
