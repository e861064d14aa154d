package models

import (
	"time"

	"pocketledger/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for id-keyed collections.
// Records are removed for real on delete; the store keeps no tombstones
// because exports and aggregates must reflect exactly the live records.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
