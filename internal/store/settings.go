package store

import (
	"encoding/json"
	"errors"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PutSetting stores a JSON value under key, replacing any existing value.
// Unlike the id-keyed collections, the key is the record identity.
func (s *Store) PutSetting(key string, value json.RawMessage) (*models.Setting, error) {
	if key == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "setting key is required")
	}
	if len(value) > 0 && !json.Valid(value) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "setting value must be valid JSON")
	}

	rec := models.Setting{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return &rec, nil
}

// GetSetting retrieves a setting by key.
func (s *Store) GetSetting(key string) (*models.Setting, error) {
	var rec models.Setting
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	return &rec, nil
}

// ListSettings retrieves every setting ordered by key.
func (s *Store) ListSettings() ([]models.Setting, error) {
	out := []models.Setting{}
	if err := s.db.Order("key").Find(&out).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	return out, nil
}

// DeleteSetting removes the setting stored under key.
func (s *Store) DeleteSetting(key string) error {
	res := s.db.Delete(&models.Setting{}, "key = ?", key)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrSettingNotFound
	}
	return nil
}
