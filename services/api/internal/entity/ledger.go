package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const PurchaseReason = "Token Purchase"

var (
	// TipConversionRate converts tipped tokens into creator currency.
	TipConversionRate = decimal.RequireFromString("0.10")

	MinPayout = decimal.NewFromInt(50)
)

type UserTokens struct {
	UserID  string `json:"userId"`
	Balance int    `json:"balance"`
}

type TokenTransaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatorID string    `json:"creatorId,omitempty"`
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	Ts        time.Time `json:"ts"`
}

type PayoutStatus string

const PayoutStatusRequested PayoutStatus = "requested"

type Payout struct {
	ID          string          `json:"id"`
	CreatorID   string          `json:"creatorId"`
	Amount      decimal.Decimal `json:"amount"`
	Status      PayoutStatus    `json:"status"`
	RequestedAt time.Time       `json:"requestedAt"`
}

func (p Payout) MarshalJSON() ([]byte, error) {
	type alias Payout
	return json.Marshal(struct {
		alias
		Amount json.Number `json:"amount"`
	}{
		alias:  alias(p),
		Amount: json.Number(p.Amount.StringFixed(2)),
	})
}

type TokenPackage struct {
	Amount  int     `json:"amount"`
	Price   float64 `json:"price"`
	Popular bool    `json:"popular,omitempty"`
}

// Credit adds purchased tokens.
func (u UserTokens) Credit(amount int) (UserTokens, error) {
	if amount <= 0 {
		return u, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if amount > math.MaxInt-u.Balance {
		return u, fmt.Errorf("%w: purchase of %d would overflow balance %d", ErrValidation, amount, u.Balance)
	}
	u.Balance += amount
	return u, nil
}

// Debit spends tokens, refusing to go below zero.
func (u UserTokens) Debit(amount int) (UserTokens, error) {
	if amount <= 0 {
		return u, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if amount > u.Balance {
		return u, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientBalance, amount, u.Balance)
	}
	u.Balance -= amount
	return u, nil
}

// TipValue is the currency a creator earns for tokens tipped.
func TipValue(tokens int) decimal.Decimal {
	return decimal.NewFromInt(int64(tokens)).Mul(TipConversionRate)
}

func TipReason(creatorName string) string {
	return fmt.Sprintf("Tip to %s", creatorName)
}

// Earn credits the creator's currency balance.
func (c Creator) Earn(amount decimal.Decimal) Creator {
	c.Balance = c.Balance.Add(amount)
	return c
}

// Withdraw debits a payout from the creator's balance.
func (c Creator) Withdraw(amount decimal.Decimal) (Creator, error) {
	if amount.LessThan(MinPayout) {
		return c, fmt.Errorf("%w: minimum payout is %s", ErrValidation, MinPayout.StringFixed(2))
	}
	if amount.GreaterThan(c.Balance) {
		return c, fmt.Errorf("%w: requested %s, available %s", ErrPayoutExceedsBalance, amount.StringFixed(2), c.Balance.StringFixed(2))
	}
	c.Balance = c.Balance.Sub(amount)
	return c, nil
}
