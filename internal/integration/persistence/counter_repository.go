// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// counterRepository implements the adapter.CounterRepository interface.
type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository instance.
func NewCounterRepository(db *gorm.DB) adapter.CounterRepository {
	return &counterRepository{
		db: db,
	}
}

// Next increments the named counter inside a transaction and returns the
// new value.
func (r *counterRepository) Next(ctx context.Context, name string, seed int64) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		v, err := nextCounterValue(tx, name, seed)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// nextCounterValue increments the named counter within an open
// transaction. The row is locked for update on databases that support
// it, so concurrent transactions serialize on the counter and no value
// is handed out twice.
func nextCounterValue(tx *gorm.DB, name string, seed int64) (int64, error) {
	query := tx.Where("name = ?", name)
	if supportsRowLocks(tx) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var counter model.CounterModel
	result := query.First(&counter)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, result.Error
		}
		counter = model.CounterModel{Name: name, Value: seed, UpdatedAt: time.Now().UTC()}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
	}

	counter.Value++
	counter.UpdatedAt = time.Now().UTC()
	if err := tx.Save(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// supportsRowLocks reports whether the connected database understands
// SELECT ... FOR UPDATE. The sqlite test database runs on a single
// connection and serializes writes on its own.
func supportsRowLocks(tx *gorm.DB) bool {
	return tx.Dialector.Name() == "postgres"
}
