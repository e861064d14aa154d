package store

import (
	"errors"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"

	"gorm.io/gorm"
)

// AddCategory persists a new category. No two categories may share the same
// (name, type) pair, active or not; the check is a lookup before insert.
func (s *Store) AddCategory(c *models.Category) (*models.Category, error) {
	if err := validateCategory(c); err != nil {
		return nil, err
	}

	dup, err := s.categoryNameTaken(c.Name, c.Type, "")
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperrors.ErrDuplicateCategory
	}

	rec := *c
	rec.IsActive = true
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return &rec, nil
}

// UpdateCategory replaces the record carrying the same id.
func (s *Store) UpdateCategory(c *models.Category) (*models.Category, error) {
	if c == nil || c.ID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category id is required")
	}
	if err := validateCategory(c); err != nil {
		return nil, err
	}

	var existing models.Category
	if err := s.db.First(&existing, "id = ?", c.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}

	dup, err := s.categoryNameTaken(c.Name, c.Type, c.ID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperrors.ErrDuplicateCategory
	}

	rec := *c
	rec.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return &rec, nil
}

// DeleteCategory removes a category. The store itself refuses the delete
// with CATEGORY_IN_USE while any transaction still references the category;
// callers do not need their own check.
func (s *Store) DeleteCategory(id string) error {
	var existing models.Category
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrReadFailed, err)
	}

	var refs int64
	if err := s.db.Model(&models.Transaction{}).
		Where("category_id = ?", id).
		Count(&refs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	if refs > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(&existing).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return nil
}

// GetCategory retrieves a category by id.
func (s *Store) GetCategory(id string) (*models.Category, error) {
	var rec models.Category
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	return &rec, nil
}

// ListCategories retrieves all categories, optionally restricted to one type,
// ordered by name.
func (s *Store) ListCategories(categoryType *models.CategoryType) ([]models.Category, error) {
	q := s.db.Model(&models.Category{})
	if categoryType != nil {
		q = q.Where("type = ?", *categoryType)
	}

	out := []models.Category{}
	if err := q.Order("name, id").Find(&out).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	return out, nil
}

// SeedDefaultCategories bulk-inserts the default category set when the
// collection is empty. It reports how many categories were created; a
// non-empty collection is left untouched.
func (s *Store) SeedDefaultCategories() (int, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	if count > 0 {
		return 0, nil
	}

	defaults := DefaultCategories()
	if err := s.db.Create(&defaults).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrWriteFailed, err)
	}
	return len(defaults), nil
}

// DefaultCategories returns the category set seeded into an empty store.
func DefaultCategories() []models.Category {
	return []models.Category{
		{Name: "Salary", Type: models.CategoryTypeIncome, Color: "#4CAF50", Icon: "briefcase", IsActive: true},
		{Name: "Freelance", Type: models.CategoryTypeIncome, Color: "#8BC34A", Icon: "laptop", IsActive: true},
		{Name: "Investments", Type: models.CategoryTypeIncome, Color: "#009688", Icon: "trending-up", IsActive: true},
		{Name: "Gifts", Type: models.CategoryTypeIncome, Color: "#CDDC39", Icon: "gift", IsActive: true},
		{Name: "Other Income", Type: models.CategoryTypeIncome, Color: "#607D8B", Icon: "plus-circle", IsActive: true},
		{Name: "Food & Dining", Type: models.CategoryTypeExpense, Color: "#FF5722", Icon: "utensils", IsActive: true},
		{Name: "Transport", Type: models.CategoryTypeExpense, Color: "#3F51B5", Icon: "bus", IsActive: true},
		{Name: "Housing", Type: models.CategoryTypeExpense, Color: "#795548", Icon: "home", IsActive: true},
		{Name: "Utilities", Type: models.CategoryTypeExpense, Color: "#FFC107", Icon: "zap", IsActive: true},
		{Name: "Health", Type: models.CategoryTypeExpense, Color: "#E91E63", Icon: "heart", IsActive: true},
		{Name: "Entertainment", Type: models.CategoryTypeExpense, Color: "#9C27B0", Icon: "film", IsActive: true},
		{Name: "Shopping", Type: models.CategoryTypeExpense, Color: "#2196F3", Icon: "shopping-bag", IsActive: true},
		{Name: "Education", Type: models.CategoryTypeExpense, Color: "#00BCD4", Icon: "book", IsActive: true},
		{Name: "Other Expenses", Type: models.CategoryTypeExpense, Color: "#9E9E9E", Icon: "more-horizontal", IsActive: true},
	}
}

// categoryNameTaken reports whether another category already uses the
// (name, type) pair. excludeID skips the record being updated.
func (s *Store) categoryNameTaken(name string, categoryType models.CategoryType, excludeID string) (bool, error) {
	q := s.db.Model(&models.Category{}).Where("name = ? AND type = ?", name, categoryType)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrReadFailed, err)
	}
	return count > 0, nil
}

func validateCategory(c *models.Category) error {
	if c == nil || c.Name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	switch c.Type {
	case models.CategoryTypeIncome, models.CategoryTypeExpense:
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
	}
	return nil
}
