package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"craftledger/pkg/logger"
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerUseCase struct {
	mock.Mock
}

func (m *MockLedgerUseCase) GetBalance(ctx context.Context, userID string) (*usecase.TokenBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TokenBalance), args.Error(1)
}

func (m *MockLedgerUseCase) Packages() []entity.TokenPackage {
	args := m.Called()
	return args.Get(0).([]entity.TokenPackage)
}

func (m *MockLedgerUseCase) Purchase(ctx context.Context, userID string, amount int) (*entity.UserTokens, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserTokens), args.Error(1)
}

func (m *MockLedgerUseCase) Tip(ctx context.Context, userID, creatorID string, amount int) (*usecase.TipResult, error) {
	args := m.Called(ctx, userID, creatorID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TipResult), args.Error(1)
}

func (m *MockLedgerUseCase) RequestPayout(ctx context.Context, creatorID string, amount decimal.Decimal) (*usecase.PayoutResult, error) {
	args := m.Called(ctx, creatorID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PayoutResult), args.Error(1)
}

func (m *MockLedgerUseCase) ListPayouts(ctx context.Context, creatorID string) ([]entity.Payout, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Payout), args.Error(1)
}

var _ usecase.LedgerUseCase = (*MockLedgerUseCase)(nil)

type MockContentUseCase struct {
	mock.Mock
}

func (m *MockContentUseCase) GetContent(ctx context.Context, contentID string) (*entity.ContentItem, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentItem), args.Error(1)
}

func (m *MockContentUseCase) CreateContent(ctx context.Context, creatorID string, draft entity.ContentDraft) (*entity.ContentItem, error) {
	args := m.Called(ctx, creatorID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentItem), args.Error(1)
}

func (m *MockContentUseCase) UpdateContent(ctx context.Context, creatorID, contentID string, draft entity.ContentDraft) (*entity.ContentItem, error) {
	args := m.Called(ctx, creatorID, contentID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentItem), args.Error(1)
}

func (m *MockContentUseCase) DeleteContent(ctx context.Context, creatorID, contentID string) error {
	args := m.Called(ctx, creatorID, contentID)
	return args.Error(0)
}

var _ usecase.ContentUseCase = (*MockContentUseCase)(nil)

type MockCreatorUseCase struct {
	mock.Mock
}

func (m *MockCreatorUseCase) Dashboard(ctx context.Context, creatorID string) (*usecase.Dashboard, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Dashboard), args.Error(1)
}

func (m *MockCreatorUseCase) PublicView(ctx context.Context, creatorID, userID string) (*usecase.CreatorPage, error) {
	args := m.Called(ctx, creatorID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CreatorPage), args.Error(1)
}

func (m *MockCreatorUseCase) ListCreators(ctx context.Context) ([]entity.Creator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Creator), args.Error(1)
}

func (m *MockCreatorUseCase) Analytics(ctx context.Context, creatorID string) (*entity.Analytics, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Analytics), args.Error(1)
}

var _ usecase.CreatorUseCase = (*MockCreatorUseCase)(nil)

type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) Subscribe(ctx context.Context, userID, tierID string) (*entity.Subscription, error) {
	args := m.Called(ctx, userID, tierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

var _ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

// setupTestRouter mounts every route behind a fixed u1/c1 identity.
func setupTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("creator_id", "c1")
		c.Next()
	})
	h.Register(api)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
