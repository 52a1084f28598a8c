package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Creator struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Bio     string          `json:"bio"`
	Avatar  string          `json:"avatar"`
	Balance decimal.Decimal `json:"balance"`
}

// MarshalJSON renders the balance as a JSON number with cent precision.
func (c Creator) MarshalJSON() ([]byte, error) {
	type alias Creator
	return json.Marshal(struct {
		alias
		Balance json.Number `json:"balance"`
	}{
		alias:   alias(c),
		Balance: json.Number(c.Balance.StringFixed(2)),
	})
}

// Exists reports whether c was loaded from storage rather than being the
// empty initial state.
func (c Creator) Exists() bool {
	return c.ID != ""
}

type UserProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type TopTipper struct {
	User   UserProfile `json:"user"`
	Amount int         `json:"amount"`
}
