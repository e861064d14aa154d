package models

import (
	"encoding/json"
	"time"
)

// BackupType distinguishes snapshots the user requested from snapshots the
// store takes on its own before a destructive import.
type BackupType string

const (
	BackupTypeManual BackupType = "manual"
	BackupTypeAuto   BackupType = "auto"
)

// Backup is an immutable point-in-time snapshot of every collection.
// Data holds the serialized export payload; Size is its length in bytes.
type Backup struct {
	Base
	Date time.Time       `gorm:"not null;index" json:"date"`
	Type BackupType      `gorm:"not null" json:"type"`
	Data json.RawMessage `gorm:"type:text" json:"data"`
	Size int64           `gorm:"not null" json:"size"`
}
