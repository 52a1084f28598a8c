package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedMarker records that a kind received its seed records.
type SeedMarker struct {
	Kind     string    `gorm:"primaryKey;size:64"`
	SeededAt time.Time `gorm:"not null"`
}

func (SeedMarker) TableName() string {
	return "seed_markers"
}

// GormStore persists kinds as gorm models. Every model must have an "id"
// primary key and a "created_at" column; List orders by insertion time.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) Session() Session {
	return &gormSession{db: g.db}
}

func (g *GormStore) Tx(ctx context.Context, fn func(ctx context.Context, s Session) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormSession{db: tx, inTx: true})
	})
}

func (g *GormStore) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormSession struct {
	db   *gorm.DB
	inTx bool
}

func (*gormSession) session() {}

// atomic runs fn in the session's transaction, or in a fresh one.
func (s *gormSession) atomic(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.inTx {
		return fn(s.db.WithContext(ctx))
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

type gormRepo[T any] struct {
	s    *gormSession
	kind Kind[T]
}

func (r *gormRepo[T]) Get(ctx context.Context, id string) (T, error) {
	rec, _, err := r.Find(ctx, id)
	return rec, err
}

func (r *gormRepo[T]) Find(ctx context.Context, id string) (T, bool, error) {
	return r.take(r.s.db.WithContext(ctx), id)
}

func (r *gormRepo[T]) take(db *gorm.DB, id string) (T, bool, error) {
	var rec T
	err := db.Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.kind.initial(), false, nil
	}
	if err != nil {
		return rec, false, fmt.Errorf("get %s %s: %w", r.kind.Name, id, err)
	}
	return rec, true, nil
}

func (r *gormRepo[T]) Mutate(ctx context.Context, id string, fn func(T) (T, error)) (T, error) {
	var next T
	err := r.s.atomic(ctx, func(tx *gorm.DB) error {
		cur, _, err := r.take(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
		if err != nil {
			return err
		}
		next, err = fn(cur)
		if err != nil {
			return err
		}
		next = r.kind.WithKey(next, id)
		if err := tx.Save(&next).Error; err != nil {
			return fmt.Errorf("save %s %s: %w", r.kind.Name, id, err)
		}
		return nil
	})
	return next, err
}

func (r *gormRepo[T]) Create(ctx context.Context, rec T) (T, error) {
	rec, id := r.kind.keyed(rec)
	if err := r.s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return rec, fmt.Errorf("create %s %s: %w", r.kind.Name, id, err)
	}
	return rec, nil
}

func (r *gormRepo[T]) Save(ctx context.Context, rec T) error {
	rec, id := r.kind.keyed(rec)
	if err := r.s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("save %s %s: %w", r.kind.Name, id, err)
	}
	return nil
}

func (r *gormRepo[T]) Delete(ctx context.Context, id string) (bool, error) {
	res := r.s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, fmt.Errorf("delete %s %s: %w", r.kind.Name, id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormRepo[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind.Name, err)
	}
	return out, nil
}

func (r *gormRepo[T]) EnsureSeed(ctx context.Context) error {
	return r.s.atomic(ctx, func(tx *gorm.DB) error {
		marker := SeedMarker{Kind: r.kind.Name, SeededAt: time.Now().UTC()}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&marker)
		if res.Error != nil {
			return fmt.Errorf("mark %s seeded: %w", r.kind.Name, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		for _, rec := range r.kind.seed() {
			rec, id := r.kind.keyed(rec)
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec).Error; err != nil {
				return fmt.Errorf("seed %s %s: %w", r.kind.Name, id, err)
			}
		}
		return nil
	})
}
