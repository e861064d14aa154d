package store

import (
	"encoding/json"
	"errors"
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"

	"gorm.io/gorm"
)

// CreateBackup captures a full export of every collection as an immutable
// snapshot record, then evicts the oldest backups beyond the retention limit.
func (s *Store) CreateBackup(kind models.BackupType) (*models.Backup, error) {
	switch kind {
	case models.BackupTypeManual, models.BackupTypeAuto:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "backup type must be manual or auto")
	}

	payload, err := s.ExportData()
	if err != nil {
		return nil, err
	}
	// A snapshot never contains other snapshots: nesting prior backups would
	// grow each one quadratically, and restoring one would clear the backups
	// collection, taking the safety backup the restore itself created with it.
	payload.Data.Backups = nil

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := models.Backup{
		Date: time.Now(),
		Type: kind,
		Data: data,
		Size: int64(len(data)),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}

	if err := s.pruneBackups(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetBackup retrieves a backup by id.
func (s *Store) GetBackup(id string) (*models.Backup, error) {
	var rec models.Backup
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBackupNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	return &rec, nil
}

// ListBackups retrieves every backup, newest first.
func (s *Store) ListBackups() ([]models.Backup, error) {
	out := []models.Backup{}
	if err := s.db.Order("date DESC, id DESC").Find(&out).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	return out, nil
}

// DeleteBackup removes the backup with the given id.
func (s *Store) DeleteBackup(id string) error {
	res := s.db.Delete(&models.Backup{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBackupNotFound
	}
	return nil
}

// RestoreBackup imports the payload captured by the backup with the given
// id. The import itself takes a fresh auto backup first, so the pre-restore
// state remains recoverable.
func (s *Store) RestoreBackup(id string) error {
	b, err := s.GetBackup(id)
	if err != nil {
		return err
	}

	var payload ExportPayload
	if err := json.Unmarshal(b.Data, &payload); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidFormat, err)
	}
	return s.ImportData(&payload)
}

// pruneBackups evicts the oldest backups by date until the count is back
// within the retention limit.
func (s *Store) pruneBackups() error {
	var count int64
	if err := s.db.Model(&models.Backup{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrReadFailed, err)
	}

	excess := count - int64(s.maxBackups)
	if excess <= 0 {
		return nil
	}

	var victims []models.Backup
	if err := s.db.Select("id").Order("date, id").Limit(int(excess)).Find(&victims).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrReadFailed, err)
	}

	ids := make([]string, len(victims))
	for i := range victims {
		ids[i] = victims[i].ID
	}
	if err := s.db.Delete(&models.Backup{}, "id IN ?", ids).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return nil
}
