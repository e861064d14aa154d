// Package store implements the embedded ledger store: durable CRUD, indexed
// scans, and aggregation over the transactions, categories, settings, and
// backups collections, all held in a single versioned SQLite database.
//
// A Store serializes nothing itself; SQLite serializes writers at the
// database level. Two operations issued without awaiting the first are a
// caller-side race and observe no ordering guarantee relative to each other.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/logger"
	"pocketledger/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SchemaVersion is the schema version this build understands. Open migrates
// databases recorded at a lower version up to the requested one and refuses
// to open databases recorded at a higher version.
const SchemaVersion uint = 2

// DefaultMaxBackups is the backup retention limit used when Options does not
// set one.
const DefaultMaxBackups = 30

// Options configures a Store.
type Options struct {
	// MaxBackups caps the backups collection; the oldest backups by date are
	// evicted once the count exceeds it. Zero means DefaultMaxBackups.
	MaxBackups int
}

// Store is the handle to one ledger database. All four collections are owned
// exclusively by the Store; callers receive copies of records, never live
// references.
type Store struct {
	db         *gorm.DB
	maxBackups int
	version    uint
}

// One handle per database file. Opening a second independent handle to the
// same file risks version-conflict errors, so Open keeps a registry and
// returns the existing handle for a path it has already opened.
var (
	registryMu sync.Mutex
	registry   = make(map[string]*Store)
)

// Open opens the ledger database at path, creating it if absent, and runs
// the embedded migrations up to version. Opening the same path again is a
// no-op returning the same handle. Fails with STORE_UNAVAILABLE when the
// file cannot be created or written, and with VERSION_CONFLICT when the
// stored schema version is higher than the requested one.
func Open(path string, version uint, opts Options) (*Store, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if s, ok := registry[path]; ok {
		if version < s.version {
			return nil, apperrors.ErrVersionConflict
		}
		return s, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
	}

	if err := migrateTo(path, version); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	s := New(db, opts)
	s.version = version
	registry[path] = s

	logger.Named("store").Infow("ledger store opened",
		"path", path,
		"schema_version", version,
		"max_backups", s.maxBackups,
	)
	return s, nil
}

// New wraps an already-open database handle. Callers that need schema
// versioning and the one-handle-per-path contract should use Open; New
// exists for embedding the store over a database the caller manages, such
// as an in-memory one.
func New(db *gorm.DB, opts Options) *Store {
	maxBackups := opts.MaxBackups
	if maxBackups <= 0 {
		maxBackups = DefaultMaxBackups
	}
	return &Store{db: db, maxBackups: maxBackups, version: SchemaVersion}
}

// migrateTo brings the schema at path to the requested version.
func migrateTo(path string, version uint) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, fmt.Sprintf("sqlite3://file:%s", path))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Named("store").Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Named("store").Warnf("migrate database close error: %v", dbErr)
		}
	}()

	current, dirty, err := m.Version()
	if err != nil {
		if !errors.Is(err, migrate.ErrNilVersion) {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		current = 0
	}
	if dirty {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable,
			fmt.Errorf("schema is dirty at version %d", current))
	}

	if uint(current) > version {
		return apperrors.ErrVersionConflict
	}
	if uint(current) == version {
		return nil
	}

	if err := m.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// Version reports the schema version the handle was opened at.
func (s *Store) Version() uint { return s.version }

// Compile-time checks that Store satisfies the per-collection contracts.
var (
	_ TransactionStorer = (*Store)(nil)
	_ CategoryStorer    = (*Store)(nil)
	_ SettingStorer     = (*Store)(nil)
	_ BackupStorer      = (*Store)(nil)
	_ Aggregator        = (*Store)(nil)
	_ Porter            = (*Store)(nil)
)
