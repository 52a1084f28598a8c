package usecase

import (
	"context"
	"testing"

	"craftledger/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	st := seededStore(t)
	uc := NewCreatorUseCase(st, testLogger())

	dash, err := uc.Dashboard(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Alex Dev", dash.Creator.Name)
	assert.Len(t, dash.Content, 5)
	require.Len(t, dash.Tiers, 3)
	assert.Equal(t, "t1", dash.Tiers[0].ID)
	assert.Equal(t, "t3", dash.Tiers[2].ID)
	assert.Len(t, dash.TopTippers, 3)
}

func TestPublicView_LocksByTierRank(t *testing.T) {
	st := seededStore(t)
	uc := NewCreatorUseCase(st, testLogger())

	page, err := uc.PublicView(context.Background(), "c1", "u1")
	require.NoError(t, err)
	assert.True(t, page.Subscription.Active)
	assert.Equal(t, "t2", page.Subscription.TierID)

	locked := map[string]bool{}
	for _, item := range page.Content {
		locked[item.ID] = item.Locked
	}
	assert.False(t, locked["content1"])
	assert.False(t, locked["content2"])
	assert.False(t, locked["content3"])
	assert.True(t, locked["content4"])
}

func TestPublicView_NoSubscriptionLocksEverything(t *testing.T) {
	st := seededStore(t)
	uc := NewCreatorUseCase(st, testLogger())

	page, err := uc.PublicView(context.Background(), "c1", "u2")
	require.NoError(t, err)
	assert.False(t, page.Subscription.Active)
	for _, item := range page.Content {
		assert.True(t, item.Locked, item.ID)
	}
}

func TestPublicView_MissingCreator(t *testing.T) {
	st := seededStore(t)
	uc := NewCreatorUseCase(st, testLogger())

	_, err := uc.PublicView(context.Background(), "ghost", "u1")
	assert.ErrorIs(t, err, entity.ErrCreatorNotFound)
}

func TestListCreators(t *testing.T) {
	st := seededStore(t)
	uc := NewCreatorUseCase(st, testLogger())

	creators, err := uc.ListCreators(context.Background())
	require.NoError(t, err)
	require.Len(t, creators, 1)
	assert.Equal(t, "c1", creators[0].ID)
}

func TestAnalytics_Totals(t *testing.T) {
	st := seededStore(t)
	uc := NewCreatorUseCase(st, testLogger())

	analytics, err := uc.Analytics(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, analytics.Earnings, 6)
	assert.Equal(t, float64(19240), analytics.TotalEarnings)
	assert.Equal(t, 342, analytics.TotalSubscribers)
}
