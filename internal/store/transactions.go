package store

import (
	"errors"
	"iter"
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"

	"gorm.io/gorm"
)

// TransactionFilter narrows a transaction scan. Type, CategoryID, Month, and
// Year are pushed to the engine and served by their indexes; From and To are
// an inclusive date range tested in memory against each record as the cursor
// advances.
type TransactionFilter struct {
	Type       *models.TransactionType
	CategoryID *string
	Month      *int
	Year       *int
	From       *time.Time
	To         *time.Time
}

// AddTransaction persists a new transaction and returns the stored copy with
// its assigned id. The derived month/year/timestamp fields are recomputed
// from the date; any values supplied by the caller are discarded.
func (s *Store) AddTransaction(tx *models.Transaction) (*models.Transaction, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	rec := *tx
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}
	rec.ApplyDateParts()

	if err := s.db.Create(&rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return &rec, nil
}

// UpdateTransaction replaces the record carrying the same id. The id and
// creation time are preserved; everything else, derived fields included, is
// recomputed from the incoming record.
func (s *Store) UpdateTransaction(tx *models.Transaction) (*models.Transaction, error) {
	if tx == nil || tx.ID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction id is required")
	}
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	var existing models.Transaction
	if err := s.db.First(&existing, "id = ?", tx.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}

	rec := *tx
	rec.CreatedAt = existing.CreatedAt
	if rec.Date.IsZero() {
		rec.Date = existing.Date
	}
	rec.ApplyDateParts()

	if err := s.db.Save(&rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return &rec, nil
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(id string) error {
	res := s.db.Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// GetTransaction retrieves a transaction by id.
func (s *Store) GetTransaction(id string) (*models.Transaction, error) {
	var rec models.Transaction
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	return &rec, nil
}

// TransactionSeq returns a lazy forward scan over the transactions matching
// the filter, in date order. The sequence is finite and non-restartable per
// call; an error, when one occurs, is yielded as the final element.
func (s *Store) TransactionSeq(filter TransactionFilter) iter.Seq2[models.Transaction, error] {
	return func(yield func(models.Transaction, error) bool) {
		q := s.db.Model(&models.Transaction{})
		if filter.Type != nil {
			q = q.Where("type = ?", *filter.Type)
		}
		if filter.CategoryID != nil {
			q = q.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.Month != nil {
			q = q.Where("month = ?", *filter.Month)
		}
		if filter.Year != nil {
			q = q.Where("year = ?", *filter.Year)
		}

		rows, err := q.Order("date, id").Rows()
		if err != nil {
			yield(models.Transaction{}, apperrors.Wrap(apperrors.ErrReadFailed, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var rec models.Transaction
			if err := s.db.ScanRows(rows, &rec); err != nil {
				yield(models.Transaction{}, apperrors.Wrap(apperrors.ErrReadFailed, err))
				return
			}
			if !inDateRange(rec.Date, filter.From, filter.To) {
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.Transaction{}, apperrors.Wrap(apperrors.ErrReadFailed, err))
		}
	}
}

// ListTransactions materializes TransactionSeq into a slice.
func (s *Store) ListTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	out := []models.Transaction{}
	for rec, err := range s.TransactionSeq(filter) {
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func validateTransaction(tx *models.Transaction) error {
	if tx == nil {
		return apperrors.ErrInvalidInput
	}
	switch tx.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return apperrors.ErrInvalidTransactionType
	}
	if tx.Amount.IsNegative() {
		return apperrors.ErrNegativeAmount
	}
	return nil
}

func inDateRange(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && date.After(*to) {
		return false
	}
	return true
}
