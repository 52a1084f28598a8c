package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionModel struct {
	ID        string    `gorm:"type:varchar(140);primary_key" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_subscriptions_user_creator" json:"user_id"`
	CreatorID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_subscriptions_user_creator" json:"creator_id"`
	TierID    string    `gorm:"type:varchar(64);not null" json:"tier_id"`
	Active    bool      `gorm:"not null;default:false" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
