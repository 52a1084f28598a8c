package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"craftledger/pkg/logger"
	"craftledger/pkg/metrics"
	"craftledger/pkg/store"
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/fixtures"
	"craftledger/services/api/internal/repo/persistent"

	"github.com/shopspring/decimal"
)

type TokenBalance struct {
	Balance      int                       `json:"balance"`
	Transactions []entity.TokenTransaction `json:"transactions"`
}

type TipResult struct {
	Tokens      entity.UserTokens       `json:"tokens"`
	Creator     entity.Creator          `json:"creator"`
	Transaction entity.TokenTransaction `json:"transaction"`
}

type PayoutResult struct {
	Payout  entity.Payout  `json:"payout"`
	Creator entity.Creator `json:"creator"`
}

type LedgerUseCase interface {
	GetBalance(ctx context.Context, userID string) (*TokenBalance, error)
	Packages() []entity.TokenPackage
	Purchase(ctx context.Context, userID string, amount int) (*entity.UserTokens, error)
	Tip(ctx context.Context, userID, creatorID string, amount int) (*TipResult, error)
	RequestPayout(ctx context.Context, creatorID string, amount decimal.Decimal) (*PayoutResult, error)
	ListPayouts(ctx context.Context, creatorID string) ([]entity.Payout, error)
}

type ledgerUseCase struct {
	store     store.Store
	publisher EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewLedgerUseCase(st store.Store, publisher EventPublisher, logger *logger.Logger) LedgerUseCase {
	return &ledgerUseCase{
		store:     st,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *ledgerUseCase) GetBalance(ctx context.Context, userID string) (*TokenBalance, error) {
	repos := persistent.NewRepos(uc.store.Session())

	tokens, err := repos.Tokens.Get(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to get tokens: %v", err)
		return nil, fmt.Errorf("failed to get tokens: %w", err)
	}

	all, err := repos.Transactions.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list transactions: %v", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txs := make([]entity.TokenTransaction, 0, len(all))
	for _, tx := range all {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Ts.After(txs[j].Ts)
	})

	return &TokenBalance{Balance: tokens.Balance, Transactions: txs}, nil
}

func (uc *ledgerUseCase) Packages() []entity.TokenPackage {
	return fixtures.TokenPackages()
}

func (uc *ledgerUseCase) Purchase(ctx context.Context, userID string, amount int) (*entity.UserTokens, error) {
	var tokens entity.UserTokens
	err := uc.store.Tx(ctx, func(ctx context.Context, s store.Session) error {
		repos := persistent.NewRepos(s)

		var err error
		tokens, err = repos.Tokens.Mutate(ctx, userID, func(cur entity.UserTokens) (entity.UserTokens, error) {
			cur.UserID = userID
			return cur.Credit(amount)
		})
		if err != nil {
			return err
		}

		_, err = repos.Transactions.Create(ctx, entity.TokenTransaction{
			UserID: userID,
			Amount: amount,
			Reason: entity.PurchaseReason,
			Ts:     uc.now().UTC(),
		})
		return err
	})
	metrics.CollectLedgerOperation("purchase", err)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase tokens: %w", err)
	}

	metrics.CollectTokensMoved("purchase", amount)
	uc.logger.Info("User %s purchased %d tokens, balance %d", userID, amount, tokens.Balance)
	publish(ctx, uc.publisher, uc.logger, LedgerEvent{
		Type:       EventTokensPurchased,
		UserID:     userID,
		Tokens:     amount,
		Balance:    strconv.Itoa(tokens.Balance),
		OccurredAt: uc.now().UTC(),
	})

	return &tokens, nil
}

// Tip checks the user's balance before resolving the creator, so an
// oversized tip to an unknown creator reports InsufficientBalance.
func (uc *ledgerUseCase) Tip(ctx context.Context, userID, creatorID string, amount int) (*TipResult, error) {
	var res TipResult
	err := uc.store.Tx(ctx, func(ctx context.Context, s store.Session) error {
		repos := persistent.NewRepos(s)

		var err error
		res.Tokens, err = repos.Tokens.Mutate(ctx, userID, func(cur entity.UserTokens) (entity.UserTokens, error) {
			cur.UserID = userID
			return cur.Debit(amount)
		})
		if err != nil {
			return err
		}

		res.Creator, err = repos.Creators.Mutate(ctx, creatorID, func(cur entity.Creator) (entity.Creator, error) {
			if !cur.Exists() {
				return cur, fmt.Errorf("%w: %s", entity.ErrCreatorNotFound, creatorID)
			}
			return cur.Earn(entity.TipValue(amount)), nil
		})
		if err != nil {
			return err
		}

		res.Transaction, err = repos.Transactions.Create(ctx, entity.TokenTransaction{
			UserID:    userID,
			CreatorID: creatorID,
			Amount:    -amount,
			Reason:    entity.TipReason(res.Creator.Name),
			Ts:        uc.now().UTC(),
		})
		return err
	})
	metrics.CollectLedgerOperation("tip", err)
	if err != nil {
		return nil, fmt.Errorf("failed to tip creator: %w", err)
	}

	metrics.CollectTokensMoved("tip", amount)
	uc.logger.Info("User %s tipped %d tokens to creator %s", userID, amount, creatorID)
	publish(ctx, uc.publisher, uc.logger, LedgerEvent{
		Type:       EventTokensTipped,
		UserID:     userID,
		CreatorID:  creatorID,
		Tokens:     amount,
		Amount:     entity.TipValue(amount).StringFixed(2),
		Balance:    res.Creator.Balance.StringFixed(2),
		OccurredAt: res.Transaction.Ts,
	})

	return &res, nil
}

func (uc *ledgerUseCase) RequestPayout(ctx context.Context, creatorID string, amount decimal.Decimal) (*PayoutResult, error) {
	var res PayoutResult
	err := uc.store.Tx(ctx, func(ctx context.Context, s store.Session) error {
		repos := persistent.NewRepos(s)

		var err error
		res.Creator, err = repos.Creators.Mutate(ctx, creatorID, func(cur entity.Creator) (entity.Creator, error) {
			if !cur.Exists() {
				return cur, fmt.Errorf("%w: %s", entity.ErrCreatorNotFound, creatorID)
			}
			return cur.Withdraw(amount)
		})
		if err != nil {
			return err
		}

		res.Payout, err = repos.Payouts.Create(ctx, entity.Payout{
			CreatorID:   creatorID,
			Amount:      amount,
			Status:      entity.PayoutStatusRequested,
			RequestedAt: uc.now().UTC(),
		})
		return err
	})
	metrics.CollectLedgerOperation("payout", err)
	if err != nil {
		return nil, fmt.Errorf("failed to request payout: %w", err)
	}

	uc.logger.Info("Creator %s requested payout of %s, balance %s", creatorID, amount.StringFixed(2), res.Creator.Balance.StringFixed(2))
	publish(ctx, uc.publisher, uc.logger, LedgerEvent{
		Type:       EventPayoutRequested,
		CreatorID:  creatorID,
		Amount:     amount.StringFixed(2),
		Balance:    res.Creator.Balance.StringFixed(2),
		OccurredAt: res.Payout.RequestedAt,
	})

	return &res, nil
}

func (uc *ledgerUseCase) ListPayouts(ctx context.Context, creatorID string) ([]entity.Payout, error) {
	all, err := persistent.NewRepos(uc.store.Session()).Payouts.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list payouts: %v", err)
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}

	payouts := make([]entity.Payout, 0, len(all))
	for _, p := range all {
		if p.CreatorID == creatorID {
			payouts = append(payouts, p)
		}
	}
	sort.SliceStable(payouts, func(i, j int) bool {
		return payouts[i].RequestedAt.After(payouts[j].RequestedAt)
	})
	return payouts, nil
}
