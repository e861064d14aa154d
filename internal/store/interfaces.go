package store

import (
	"encoding/json"
	"time"

	"pocketledger/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionStorer defines the contract for the transactions collection.
type TransactionStorer interface {
	AddTransaction(tx *models.Transaction) (*models.Transaction, error)
	UpdateTransaction(tx *models.Transaction) (*models.Transaction, error)
	DeleteTransaction(id string) error
	GetTransaction(id string) (*models.Transaction, error)
	ListTransactions(filter TransactionFilter) ([]models.Transaction, error)
}

// CategoryStorer defines the contract for the categories collection.
type CategoryStorer interface {
	AddCategory(c *models.Category) (*models.Category, error)
	UpdateCategory(c *models.Category) (*models.Category, error)
	DeleteCategory(id string) error
	GetCategory(id string) (*models.Category, error)
	ListCategories(categoryType *models.CategoryType) ([]models.Category, error)
	SeedDefaultCategories() (int, error)
}

// SettingStorer defines the contract for the settings collection.
type SettingStorer interface {
	PutSetting(key string, value json.RawMessage) (*models.Setting, error)
	GetSetting(key string) (*models.Setting, error)
	ListSettings() ([]models.Setting, error)
	DeleteSetting(key string) error
}

// BackupStorer defines the contract for the backups collection.
type BackupStorer interface {
	CreateBackup(kind models.BackupType) (*models.Backup, error)
	GetBackup(id string) (*models.Backup, error)
	ListBackups() ([]models.Backup, error)
	DeleteBackup(id string) error
	RestoreBackup(id string) error
}

// Aggregator defines the derived-aggregate queries over transactions.
type Aggregator interface {
	CalculateDailyTotals(date time.Time) (Totals, error)
	CalculateMonthlyTotals(year int, month time.Month) (Totals, error)
	CategoryTotals(txType models.TransactionType, from, to time.Time) (map[string]decimal.Decimal, error)
	Statistics(year int, month *time.Month) (*Statistics, error)
}

// Porter defines full-database export and destructive import.
type Porter interface {
	ExportData() (*ExportPayload, error)
	ImportData(payload *ExportPayload) error
}
