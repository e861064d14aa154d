package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category with presentation metadata.
// No two categories may share the same (name, type) pair; the store enforces
// this with a lookup before insert rather than a unique index.
type Category struct {
	Base
	Name        string       `gorm:"not null;index" json:"name"`
	Type        CategoryType `gorm:"not null;index" json:"type"`
	Color       string       `json:"color"`
	Icon        string       `json:"icon,omitempty"`
	Description string       `json:"description,omitempty"`
	IsActive    bool         `gorm:"not null;default:true" json:"is_active"`
}
