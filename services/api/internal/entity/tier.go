package entity

import "sort"

type Tier struct {
	ID        string   `json:"id"`
	CreatorID string   `json:"creatorId"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Rank      int      `json:"rank"`
	Benefits  []string `json:"benefits"`
}

// SortTiers orders tiers by rank, lowest first. Ties keep their input order.
func SortTiers(tiers []Tier) {
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].Rank < tiers[j].Rank
	})
}

func findTier(tiers []Tier, id string) (Tier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

// CanView reports whether sub grants access to content gated at contentTierID.
// Access requires an active subscription and a subscribed tier ranked at or
// above the content's tier. Unknown tiers deny access.
func CanView(sub Subscription, tiers []Tier, contentTierID string) bool {
	if !sub.Active {
		return false
	}
	subscribed, ok := findTier(tiers, sub.TierID)
	if !ok {
		return false
	}
	required, ok := findTier(tiers, contentTierID)
	if !ok {
		return false
	}
	return required.Rank <= subscribed.Rank
}
