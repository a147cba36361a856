package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"verde/internal/models"
)

// StateRepository stores the whole ledger State as one JSON document under a
// fixed key.
type StateRepository struct {
	db  *gorm.DB
	key string
}

// NewStateRepository creates a repository bound to key.
func NewStateRepository(db *gorm.DB, key string) *StateRepository {
	return &StateRepository{db: db, key: key}
}

// Key returns the storage key.
func (r *StateRepository) Key() string {
	return r.key
}

// Load returns the stored state, or nil when nothing has been saved yet.
func (r *StateRepository) Load(ctx context.Context) (*models.State, error) {
	var entry models.StateEntry
	err := r.db.WithContext(ctx).Where("key = ?", r.key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state %q: %w", r.key, err)
	}

	var state models.State
	if err := json.Unmarshal([]byte(entry.Value), &state); err != nil {
		return nil, fmt.Errorf("decode state %q: %w", r.key, err)
	}
	return &state, nil
}

// Save replaces the stored state.
func (r *StateRepository) Save(ctx context.Context, state *models.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	entry := models.StateEntry{Key: r.key, Value: string(data), UpdatedAt: time.Now()}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save state %q: %w", r.key, err)
	}
	return nil
}
