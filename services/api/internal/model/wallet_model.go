package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserTokensModel is keyed by the user id itself.
type UserTokensModel struct {
	ID        string    `gorm:"type:varchar(64);primary_key" json:"id"`
	Balance   int       `gorm:"type:bigint;not null;default:0" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserTokensModel) TableName() string {
	return "user_tokens"
}

type TokenTransactionModel struct {
	ID        string    `gorm:"type:varchar(64);primary_key" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	CreatorID string    `gorm:"type:varchar(64);index" json:"creator_id,omitempty"`
	Amount    int       `gorm:"type:bigint;not null" json:"amount"`
	Reason    string    `gorm:"not null" json:"reason"`
	Ts        time.Time `gorm:"not null;index" json:"ts"`
	CreatedAt time.Time `json:"created_at"`
}

func (TokenTransactionModel) TableName() string {
	return "token_transactions"
}

func (t *TokenTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type PayoutModel struct {
	ID          string          `gorm:"type:varchar(64);primary_key" json:"id"`
	CreatorID   string          `gorm:"type:varchar(64);not null;index" json:"creator_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Status      string          `gorm:"type:varchar(20);not null" json:"status"`
	RequestedAt time.Time       `gorm:"not null" json:"requested_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (PayoutModel) TableName() string {
	return "payouts"
}

func (p *PayoutModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
