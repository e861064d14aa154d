package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"pocketledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates an active category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     fmt.Sprintf("Test Category %d", nextID()),
		Type:     categoryType,
		Color:    "#336699",
		IsActive: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction with derived fields consistent
// with the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		CategoryID:  fmt.Sprintf("cat-%d", nextID()),
		Date:        date,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
	}
	tx.ApplyDateParts()

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestSetting stores a JSON value under a unique key.
func CreateTestSetting(t *testing.T, db *gorm.DB, value any) *models.Setting {
	t.Helper()

	raw, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("failed to marshal setting value: %v", err)
	}

	setting := &models.Setting{
		Key:   fmt.Sprintf("test.setting.%d", nextID()),
		Value: raw,
	}
	if err := db.Create(setting).Error; err != nil {
		t.Fatalf("failed to create test setting: %v", err)
	}
	return setting
}

// CreateTestBackup creates a backup record dated as given.
func CreateTestBackup(t *testing.T, db *gorm.DB, date time.Time) *models.Backup {
	t.Helper()

	data := []byte(`{"version":"1.0","data":{}}`)
	backup := &models.Backup{
		Date: date,
		Type: models.BackupTypeManual,
		Data: data,
		Size: int64(len(data)),
	}
	if err := db.Create(backup).Error; err != nil {
		t.Fatalf("failed to create test backup: %v", err)
	}
	return backup
}
