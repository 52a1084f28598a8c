package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TierModel struct {
	ID        string    `gorm:"type:varchar(64);primary_key" json:"id"`
	CreatorID string    `gorm:"type:varchar(64);not null;index" json:"creator_id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Rank      int       `gorm:"not null;default:0" json:"rank"`
	Benefits  []string  `gorm:"type:jsonb;serializer:json" json:"benefits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TierModel) TableName() string {
	return "tiers"
}

func (t *TierModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
