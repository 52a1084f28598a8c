package entity

type EarningsPoint struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
}

type SubscribersPoint struct {
	Month       string `json:"month"`
	Subscribers int    `json:"subscribers"`
}

type ContentPerformance struct {
	ContentID string  `json:"contentId"`
	Title     string  `json:"title"`
	Views     int     `json:"views"`
	Earnings  float64 `json:"earnings"`
}

type Analytics struct {
	Earnings         []EarningsPoint      `json:"earnings"`
	Subscribers      []SubscribersPoint   `json:"subscribers"`
	TopContent       []ContentPerformance `json:"topContent"`
	TotalEarnings    float64              `json:"totalEarnings"`
	TotalSubscribers int                  `json:"totalSubscribers"`
}

// WithTotals fills the totals: earnings summed over all months, subscribers
// taken from the latest month.
func (a Analytics) WithTotals() Analytics {
	a.TotalEarnings = 0
	for _, p := range a.Earnings {
		a.TotalEarnings += p.Earnings
	}
	a.TotalSubscribers = 0
	if n := len(a.Subscribers); n > 0 {
		a.TotalSubscribers = a.Subscribers[n-1].Subscribers
	}
	return a
}
