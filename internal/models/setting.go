package models

import (
	"encoding/json"
	"time"
)

// Setting is a singleton keyed record holding an arbitrary JSON value.
// The key is the primary key; there is no autogenerated id.
type Setting struct {
	Key       string          `gorm:"primaryKey" json:"key"`
	Value     json.RawMessage `gorm:"type:text" json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}
