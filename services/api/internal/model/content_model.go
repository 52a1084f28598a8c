package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttachmentModel struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type ContentModel struct {
	ID          string            `gorm:"type:varchar(64);primary_key" json:"id"`
	CreatorID   string            `gorm:"type:varchar(64);not null;index" json:"creator_id"`
	Title       string            `gorm:"not null" json:"title"`
	Description string            `json:"description"`
	Type        string            `gorm:"type:varchar(20);not null" json:"type"`
	TierID      string            `gorm:"type:varchar(64);not null" json:"tier_id"`
	PublishedAt time.Time         `json:"published_at"`
	Status      string            `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Attachments []AttachmentModel `gorm:"type:jsonb;serializer:json" json:"attachments"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (ContentModel) TableName() string {
	return "content_items"
}

func (c *ContentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
