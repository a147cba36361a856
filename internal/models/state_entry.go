package models

import "time"

// StateEntry is one row of the key-value store backing the persisted State.
type StateEntry struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
