package store

import (
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"

	"gorm.io/gorm"
)

// exportVersion identifies the export payload format, independent of the
// database schema version.
const exportVersion = "1.0"

// ExportCollections holds the full contents of every collection.
type ExportCollections struct {
	Transactions []models.Transaction `json:"transactions"`
	Categories   []models.Category    `json:"categories"`
	Settings     []models.Setting     `json:"settings"`
	Backups      []models.Backup      `json:"backups"`
}

// ExportPayload is the wire format for exports, imports, and backup data.
type ExportPayload struct {
	Version    string             `json:"version"`
	ExportDate time.Time          `json:"export_date"`
	Data       *ExportCollections `json:"data"`
}

// ExportData dumps every collection, records serialized as stored, ids
// included.
func (s *Store) ExportData() (*ExportPayload, error) {
	transactions, err := s.ListTransactions(TransactionFilter{})
	if err != nil {
		return nil, err
	}
	categories, err := s.ListCategories(nil)
	if err != nil {
		return nil, err
	}
	settings, err := s.ListSettings()
	if err != nil {
		return nil, err
	}
	backups, err := s.ListBackups()
	if err != nil {
		return nil, err
	}

	return &ExportPayload{
		Version:    exportVersion,
		ExportDate: time.Now(),
		Data: &ExportCollections{
			Transactions: transactions,
			Categories:   categories,
			Settings:     settings,
			Backups:      backups,
		},
	}, nil
}

// ImportData replaces the contents of every collection present in the
// payload. Before touching anything it captures an auto backup: there is no
// transactional rollback across collections, so that snapshot is the only
// recovery path if the import fails partway.
//
// Records are re-added with fresh ids, so imported data never collides with
// existing ids but loses referential continuity with whatever assigned the
// old ones. Settings keep their keys; the key is the record identity.
func (s *Store) ImportData(payload *ExportPayload) error {
	if payload == nil || payload.Version == "" || payload.Data == nil {
		return apperrors.ErrInvalidFormat
	}

	if _, err := s.CreateBackup(models.BackupTypeAuto); err != nil {
		return err
	}

	in := payload.Data

	if in.Transactions != nil {
		if err := s.clear(&models.Transaction{}); err != nil {
			return err
		}
		for i := range in.Transactions {
			rec := in.Transactions[i]
			rec.Base = models.Base{}
			rec.ApplyDateParts()
			if err := s.db.Create(&rec).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrWriteFailed, err)
			}
		}
	}

	if in.Categories != nil {
		if err := s.clear(&models.Category{}); err != nil {
			return err
		}
		for i := range in.Categories {
			rec := in.Categories[i]
			rec.Base = models.Base{}
			if err := s.db.Create(&rec).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrWriteFailed, err)
			}
		}
	}

	if in.Settings != nil {
		if err := s.clear(&models.Setting{}); err != nil {
			return err
		}
		for i := range in.Settings {
			rec := in.Settings[i]
			if err := s.db.Create(&rec).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrWriteFailed, err)
			}
		}
	}

	if in.Backups != nil {
		if err := s.clear(&models.Backup{}); err != nil {
			return err
		}
		for i := range in.Backups {
			rec := in.Backups[i]
			rec.Base = models.Base{}
			if err := s.db.Create(&rec).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrWriteFailed, err)
			}
		}
	}

	return nil
}

// clear removes every record in one collection. Used only during
// destructive import.
func (s *Store) clear(model any) error {
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return nil
}
