package store

import (
	"path/filepath"
	"testing"
	"time"

	"pocketledger/internal/models"
	"pocketledger/internal/testutil"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// newTestStore wraps an isolated in-memory database in a Store.
func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	return New(db, Options{}), db
}

// newTestStoreWithOptions wraps an isolated in-memory database in a Store
// with the given options.
func newTestStoreWithOptions(t *testing.T, opts Options) (*Store, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	return New(db, opts), db
}

func TestOpen(t *testing.T) {
	t.Run("creates_and_migrates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.db")

		s, err := Open(path, SchemaVersion, Options{})
		testutil.AssertNoError(t, err)

		// The migrated schema must be usable for writes straight away.
		tx, err := s.AddTransaction(&models.Transaction{
			Type:   models.TransactionTypeIncome,
			Amount: decimal.RequireFromString("12.50"),
			Date:   time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local),
		})
		testutil.AssertNoError(t, err)
		if tx.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
	})

	t.Run("idempotent_same_version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.db")

		first, err := Open(path, SchemaVersion, Options{})
		testutil.AssertNoError(t, err)

		testutil.CreateTestCategory(t, first.db, models.CategoryTypeExpense)

		second, err := Open(path, SchemaVersion, Options{})
		testutil.AssertNoError(t, err)

		if first != second {
			t.Error("expected the same handle for the same path and version")
		}

		cats, err := second.ListCategories(nil)
		testutil.AssertNoError(t, err)
		if len(cats) != 1 {
			t.Errorf("expected 1 category to survive reopen, got %d", len(cats))
		}
	})

	t.Run("downgrade_refused", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.db")

		_, err := Open(path, SchemaVersion, Options{})
		testutil.AssertNoError(t, err)

		_, err = Open(path, SchemaVersion-1, Options{})
		testutil.AssertAppError(t, err, "VERSION_CONFLICT")
	})
}

func TestMigrateTo(t *testing.T) {
	t.Run("stepwise_upgrade", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.db")

		testutil.AssertNoError(t, migrateTo(path, 1))
		testutil.AssertNoError(t, migrateTo(path, 2))
	})

	t.Run("same_version_noop", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.db")

		testutil.AssertNoError(t, migrateTo(path, SchemaVersion))
		testutil.AssertNoError(t, migrateTo(path, SchemaVersion))
	})

	t.Run("downgrade_refused", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.db")

		testutil.AssertNoError(t, migrateTo(path, 2))
		testutil.AssertAppError(t, migrateTo(path, 1), "VERSION_CONFLICT")
	})
}
