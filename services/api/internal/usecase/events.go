package usecase

import (
	"context"
	"time"

	"craftledger/pkg/logger"
	"craftledger/pkg/metrics"
)

const (
	EventTokensPurchased = "tokens.purchased"
	EventTokensTipped    = "tokens.tipped"
	EventPayoutRequested = "payout.requested"
)

// EventPublisher delivers committed ledger events. queue.Client implements it.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

type LedgerEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"userId,omitempty"`
	CreatorID  string    `json:"creatorId,omitempty"`
	Tokens     int       `json:"tokens,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	Balance    string    `json:"balance"`
	OccurredAt time.Time `json:"occurredAt"`
}

// publish never fails the caller; the ledger write has already committed.
func publish(ctx context.Context, pub EventPublisher, log *logger.Logger, ev LedgerEvent) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, ev.Type, ev); err != nil {
		metrics.EventPublishFailures.Inc()
		log.Warn("Failed to publish %s event: %v", ev.Type, err)
	}
}
