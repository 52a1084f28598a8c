package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"craftledger/pkg/logger"
	"craftledger/pkg/store"
	"craftledger/services/api/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, 10, 30, 12, 0, 0, 0, time.UTC)

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, NewSeedUseCase(st, testLogger()).EnsureSeed(context.Background()))
	return st
}

func reposOf(st store.Store) *persistent.Repos {
	return persistent.NewRepos(st.Session())
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}
