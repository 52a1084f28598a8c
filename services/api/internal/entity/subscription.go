package entity

type Subscription struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	CreatorID string `json:"creatorId"`
	TierID    string `json:"tierId"`
	Active    bool   `json:"active"`
}

// SubscriptionID is the key of the single subscription a user holds with a creator.
func SubscriptionID(userID, creatorID string) string {
	return userID + ":" + creatorID
}
