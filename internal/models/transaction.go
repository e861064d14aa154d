package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single money movement.
//
// CategoryID is a plain reference, not a foreign key: deleting a category
// never cascades, and orphaned references are tolerated (callers render
// them as an unknown category).
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null;index" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	CategoryID  string          `gorm:"type:uuid;index" json:"category_id"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `json:"description"`

	// Derived from Date on every write, never supplied by callers.
	// Persisted so month/year lookups hit an index instead of parsing dates.
	Month     int   `gorm:"not null;index" json:"month"`
	Year      int   `gorm:"not null;index" json:"year"`
	Timestamp int64 `gorm:"not null" json:"timestamp"`
}

// DateParts computes the denormalized calendar fields for a transaction date.
// Month is 1-12, timestamp is epoch milliseconds.
func DateParts(date time.Time) (month, year int, timestamp int64) {
	return int(date.Month()), date.Year(), date.UnixMilli()
}

// ApplyDateParts recomputes Month, Year, and Timestamp from Date. The store
// calls this on every insert and update so the derived fields cannot drift
// from the date they were computed from.
func (t *Transaction) ApplyDateParts() {
	t.Month, t.Year, t.Timestamp = DateParts(t.Date)
}
