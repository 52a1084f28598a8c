// Package store is a keyed record store parameterized per entity kind.
//
// A Kind declares how records of one type are named, keyed, initialized and
// seeded. Table binds a Kind to a Session and yields a typed Repository.
// Sessions come from Store.Session (each call stands alone) or from Store.Tx,
// where every write commits or rolls back together.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrUnknownSession = errors.New("store: unknown session type")

// Kind describes one entity kind stored under Name.
type Kind[T any] struct {
	Name string

	// Initial is returned by Get for absent ids.
	Initial func() T

	// Seed returns the fixture records inserted by EnsureSeed.
	Seed func() []T

	Key     func(T) string
	WithKey func(T, string) T
}

func (k Kind[T]) initial() T {
	if k.Initial == nil {
		var zero T
		return zero
	}
	return k.Initial()
}

func (k Kind[T]) seed() []T {
	if k.Seed == nil {
		return nil
	}
	return k.Seed()
}

// keyed makes sure rec carries an id, generating one when it is empty.
func (k Kind[T]) keyed(rec T) (T, string) {
	id := k.Key(rec)
	if id == "" {
		id = uuid.New().String()
		rec = k.WithKey(rec, id)
	}
	return rec, id
}

type Repository[T any] interface {
	// Get returns the stored record or the kind's initial state when absent.
	Get(ctx context.Context, id string) (T, error)
	Find(ctx context.Context, id string) (T, bool, error)
	// Mutate reads the current state (initial when absent), applies fn and
	// writes the result under id. An error from fn aborts the write.
	Mutate(ctx context.Context, id string, fn func(T) (T, error)) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Save(ctx context.Context, rec T) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]T, error)
	// EnsureSeed inserts the kind's seed records unless the kind was seeded before.
	EnsureSeed(ctx context.Context) error
}

type Session interface {
	session()
}

type Store interface {
	Session() Session
	Tx(ctx context.Context, fn func(ctx context.Context, s Session) error) error
	Close() error
}

// Table returns the repository for kind within session s.
func Table[T any](s Session, kind Kind[T]) Repository[T] {
	switch sess := s.(type) {
	case *memorySession:
		return &memoryRepo[T]{s: sess, kind: kind}
	case *gormSession:
		return &gormRepo[T]{s: sess, kind: kind}
	default:
		return errRepo[T]{err: fmt.Errorf("%w: %T", ErrUnknownSession, s)}
	}
}

type errRepo[T any] struct {
	err error
}

func (r errRepo[T]) Get(context.Context, string) (T, error) {
	var zero T
	return zero, r.err
}

func (r errRepo[T]) Find(context.Context, string) (T, bool, error) {
	var zero T
	return zero, false, r.err
}

func (r errRepo[T]) Mutate(context.Context, string, func(T) (T, error)) (T, error) {
	var zero T
	return zero, r.err
}

func (r errRepo[T]) Create(context.Context, T) (T, error) {
	var zero T
	return zero, r.err
}

func (r errRepo[T]) Save(context.Context, T) error                { return r.err }
func (r errRepo[T]) Delete(context.Context, string) (bool, error) { return false, r.err }
func (r errRepo[T]) List(context.Context) ([]T, error)            { return nil, r.err }
func (r errRepo[T]) EnsureSeed(context.Context) error             { return r.err }
