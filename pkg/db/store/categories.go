package store

import (
	"context"

	"github.com/mwantia/studytrack/pkg/db/models"
	"gorm.io/gorm"
)

// CreateCategory inserts the category. When it is flagged as default, the
// flag is first cleared on every other category inside the same
// transaction, keeping "at most one default" intact even mid-failure.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if category.IsDefault {
			if err := clearDefaults(tx, 0); err != nil {
				return err
			}
		}
		return tx.Omit("Items").Create(category).Error
	})
}

// ListCategories returns all categories ordered by name
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

// UpdateCategory replaces every field of the category, clearing the default
// flag on the others first when this one becomes the default.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if category.IsDefault {
			if err := clearDefaults(tx, category.ID); err != nil {
				return err
			}
		}

		result := tx.Model(&models.Category{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
			"color":       category.Color,
			"is_default":  category.IsDefault,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteCategory removes the category unconditionally; study items that
// referenced it fall back to a null category via the foreign-key action.
// Callers wanting a confirmation step should consult CountItemsInCategory
// before calling this.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Category{}, id).Error
}

// CountItemsInCategory reports how many study items reference the category
func (s *SQLiteStore) CountItemsInCategory(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.StudyItem{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count, err
}

func clearDefaults(tx *gorm.DB, keep uint) error {
	query := tx.Model(&models.Category{}).Where("is_default = ?", true)
	if keep != 0 {
		query = query.Where("id != ?", keep)
	}
	return query.Update("is_default", false).Error
}
