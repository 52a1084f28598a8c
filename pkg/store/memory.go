package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrAlreadyExists = errors.New("store: record already exists")
	ErrTxDone        = errors.New("store: transaction already finished")
)

// MemoryStore keeps records JSON-encoded so callers never share slices or
// maps with stored state. All transactions are serialized on one mutex.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string]*memoryTable
	seeded map[string]bool
}

type memoryTable struct {
	rows  map[string][]byte
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]*memoryTable),
		seeded: make(map[string]bool),
	}
}

func (m *MemoryStore) Session() Session {
	return &memorySession{store: m}
}

func (m *MemoryStore) Tx(ctx context.Context, fn func(ctx context.Context, s Session) error) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tables, seeded := m.snapshot()
	sess := &memorySession{store: m, inTx: true}

	defer func() {
		sess.done = true
		if p := recover(); p != nil {
			m.tables, m.seeded = tables, seeded
			panic(p)
		}
		if err != nil {
			m.tables, m.seeded = tables, seeded
		}
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, sess)
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) snapshot() (map[string]*memoryTable, map[string]bool) {
	tables := make(map[string]*memoryTable, len(m.tables))
	for name, t := range m.tables {
		rows := make(map[string][]byte, len(t.rows))
		for id, b := range t.rows {
			rows[id] = b
		}
		order := make([]string, len(t.order))
		copy(order, t.order)
		tables[name] = &memoryTable{rows: rows, order: order}
	}

	seeded := make(map[string]bool, len(m.seeded))
	for k, v := range m.seeded {
		seeded[k] = v
	}
	return tables, seeded
}

func (m *MemoryStore) table(name string) *memoryTable {
	t, ok := m.tables[name]
	if !ok {
		t = &memoryTable{rows: make(map[string][]byte)}
		m.tables[name] = t
	}
	return t
}

func (t *memoryTable) put(id string, b []byte) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = b
}

func (t *memoryTable) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

type memorySession struct {
	store *MemoryStore
	inTx  bool
	done  bool
}

func (*memorySession) session() {}

// do runs fn under the store mutex unless the session already holds it.
func (s *memorySession) do(fn func() error) error {
	if s.inTx {
		if s.done {
			return ErrTxDone
		}
		return fn()
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return fn()
}

type memoryRepo[T any] struct {
	s    *memorySession
	kind Kind[T]
}

func (r *memoryRepo[T]) tbl() *memoryTable {
	return r.s.store.table(r.kind.Name)
}

func (r *memoryRepo[T]) decode(b []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(b, &rec); err != nil {
		return rec, fmt.Errorf("decode %s: %w", r.kind.Name, err)
	}
	return rec, nil
}

func (r *memoryRepo[T]) encode(rec T) ([]byte, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", r.kind.Name, err)
	}
	return b, nil
}

func (r *memoryRepo[T]) find(id string) (T, bool, error) {
	b, ok := r.tbl().rows[id]
	if !ok {
		return r.kind.initial(), false, nil
	}
	rec, err := r.decode(b)
	return rec, err == nil, err
}

func (r *memoryRepo[T]) Get(ctx context.Context, id string) (T, error) {
	rec, _, err := r.Find(ctx, id)
	return rec, err
}

func (r *memoryRepo[T]) Find(_ context.Context, id string) (T, bool, error) {
	var (
		rec   T
		found bool
	)
	err := r.s.do(func() error {
		var err error
		rec, found, err = r.find(id)
		return err
	})
	return rec, found, err
}

func (r *memoryRepo[T]) Mutate(_ context.Context, id string, fn func(T) (T, error)) (T, error) {
	var next T
	err := r.s.do(func() error {
		cur, _, err := r.find(id)
		if err != nil {
			return err
		}
		next, err = fn(cur)
		if err != nil {
			return err
		}
		next = r.kind.WithKey(next, id)
		b, err := r.encode(next)
		if err != nil {
			return err
		}
		r.tbl().put(id, b)
		return nil
	})
	return next, err
}

func (r *memoryRepo[T]) Create(_ context.Context, rec T) (T, error) {
	err := r.s.do(func() error {
		var id string
		rec, id = r.kind.keyed(rec)
		t := r.tbl()
		if _, ok := t.rows[id]; ok {
			return fmt.Errorf("%w: %s %s", ErrAlreadyExists, r.kind.Name, id)
		}
		b, err := r.encode(rec)
		if err != nil {
			return err
		}
		t.put(id, b)
		return nil
	})
	return rec, err
}

func (r *memoryRepo[T]) Save(_ context.Context, rec T) error {
	return r.s.do(func() error {
		rec, id := r.kind.keyed(rec)
		b, err := r.encode(rec)
		if err != nil {
			return err
		}
		r.tbl().put(id, b)
		return nil
	})
}

func (r *memoryRepo[T]) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	err := r.s.do(func() error {
		existed = r.tbl().remove(id)
		return nil
	})
	return existed, err
}

func (r *memoryRepo[T]) List(_ context.Context) ([]T, error) {
	var out []T
	err := r.s.do(func() error {
		t := r.tbl()
		out = make([]T, 0, len(t.order))
		for _, id := range t.order {
			rec, err := r.decode(t.rows[id])
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

func (r *memoryRepo[T]) EnsureSeed(_ context.Context) error {
	return r.s.do(func() error {
		st := r.s.store
		if st.seeded[r.kind.Name] {
			return nil
		}
		t := r.tbl()
		for _, rec := range r.kind.seed() {
			rec, id := r.kind.keyed(rec)
			if _, ok := t.rows[id]; ok {
				continue
			}
			b, err := r.encode(rec)
			if err != nil {
				return err
			}
			t.put(id, b)
		}
		st.seeded[r.kind.Name] = true
		return nil
	})
}
