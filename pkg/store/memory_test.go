package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID      string   `json:"id"`
	Owner   string   `json:"owner"`
	Balance int      `json:"balance"`
	Tags    []string `json:"tags"`
}

var accounts = Kind[account]{
	Name:    "account",
	Initial: func() account { return account{Tags: []string{}} },
	Seed: func() []account {
		return []account{
			{ID: "a1", Owner: "alice", Balance: 100},
			{ID: "a2", Owner: "bob", Balance: 5},
		}
	},
	Key:     func(a account) string { return a.ID },
	WithKey: func(a account, id string) account { a.ID = id; return a },
}

func TestUnitGetReturnsInitialStateWhenAbsent(t *testing.T) {
	ctx := context.Background()
	repo := Table(NewMemoryStore().Session(), accounts)

	got, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, account{Tags: []string{}}, got)

	_, found, err := repo.Find(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUnitCreateGeneratesID(t *testing.T) {
	ctx := context.Background()
	repo := Table(NewMemoryStore().Session(), accounts)

	created, err := repo.Create(ctx, account{Owner: "carol"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, found, err := repo.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "carol", got.Owner)

	_, err = repo.Create(ctx, created)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUnitStoredRecordsAreIsolatedFromCallers(t *testing.T) {
	ctx := context.Background()
	repo := Table(NewMemoryStore().Session(), accounts)

	rec := account{ID: "a1", Tags: []string{"vip"}}
	require.NoError(t, repo.Save(ctx, rec))
	rec.Tags[0] = "changed"

	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"vip"}, got.Tags)
}

func TestUnitMutate(t *testing.T) {
	ctx := context.Background()
	repo := Table(NewMemoryStore().Session(), accounts)

	t.Run("absent id starts from initial state", func(t *testing.T) {
		next, err := repo.Mutate(ctx, "fresh", func(a account) (account, error) {
			a.Balance += 10
			return a, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "fresh", next.ID)
		assert.Equal(t, 10, next.Balance)
	})

	t.Run("error from fn aborts the write", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.Mutate(ctx, "fresh", func(a account) (account, error) {
			a.Balance = 999
			return a, boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := repo.Get(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, 10, got.Balance)
	})
}

func TestUnitDeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := Table(NewMemoryStore().Session(), accounts)

	created, err := repo.Create(ctx, account{Owner: "dave"})
	require.NoError(t, err)

	existed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestUnitListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := Table(NewMemoryStore().Session(), accounts)

	for _, id := range []string{"c", "a", "b"} {
		_, err := repo.Create(ctx, account{ID: id})
		require.NoError(t, err)
	}
	_, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, account{ID: "c", Balance: 1}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, 1, list[0].Balance)
	assert.Equal(t, "b", list[1].ID)
}

func TestUnitEnsureSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := Table(NewMemoryStore().Session(), accounts)

	require.NoError(t, repo.EnsureSeed(ctx))
	_, err := repo.Delete(ctx, "a2")
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSeed(ctx))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a1", list[0].ID)
}

func TestUnitEnsureSeedConcurrent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, Table(st.Session(), accounts).EnsureSeed(ctx))
		}()
	}
	wg.Wait()

	list, err := Table(st.Session(), accounts).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUnitTxCommit(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	err := st.Tx(ctx, func(ctx context.Context, s Session) error {
		repo := Table(s, accounts)
		if _, err := repo.Create(ctx, account{ID: "x", Balance: 1}); err != nil {
			return err
		}
		_, err := repo.Mutate(ctx, "x", func(a account) (account, error) {
			a.Balance++
			return a, nil
		})
		return err
	})
	require.NoError(t, err)

	got, err := Table(st.Session(), accounts).Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Balance)
}

func TestUnitTxRollback(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, Table(st.Session(), accounts).EnsureSeed(ctx))

	boom := errors.New("credit failed")
	err := st.Tx(ctx, func(ctx context.Context, s Session) error {
		repo := Table(s, accounts)
		if _, err := repo.Mutate(ctx, "a1", func(a account) (account, error) {
			a.Balance -= 50
			return a, nil
		}); err != nil {
			return err
		}
		if _, err := repo.Create(ctx, account{ID: "ledger-entry"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	repo := Table(st.Session(), accounts)
	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Balance)

	_, found, err := repo.Find(ctx, "ledger-entry")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUnitTxSessionUnusableAfterCommit(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var leaked Session
	require.NoError(t, st.Tx(ctx, func(ctx context.Context, s Session) error {
		leaked = s
		return nil
	}))

	_, err := Table(leaked, accounts).Get(ctx, "a1")
	assert.ErrorIs(t, err, ErrTxDone)
}

func TestUnitConcurrentMutationsDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Table(st.Session(), accounts).Mutate(ctx, "counter", func(a account) (account, error) {
				a.Balance++
				return a, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := Table(st.Session(), accounts).Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, 50, got.Balance)
}

type foreignSession struct{}

func (foreignSession) session() {}

func TestUnitTableRejectsUnknownSession(t *testing.T) {
	_, err := Table[account](foreignSession{}, accounts).List(context.Background())
	assert.ErrorIs(t, err, ErrUnknownSession)
}
