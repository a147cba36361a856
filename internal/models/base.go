package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contains common columns for the relational side tables (audit log,
// net-worth snapshots). Ledger entities live inside the State document instead.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = newUUID()
	}
	return nil
}

// Entity id prefixes.
const (
	PrefixCategory    = "cat"
	PrefixAccount     = "acc"
	PrefixTransaction = "tr"
	PrefixBudget      = "bud"
	PrefixSchedule    = "sch"
	PrefixInvestment  = "inv"
	PrefixGoal        = "goal"
)

// NewID returns a fresh entity id of the form "<prefix>-<uuidv7>".
func NewID(prefix string) string {
	return prefix + "-" + newUUID()
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
