package store

import (
	"context"

	"github.com/mwantia/studytrack/pkg/db/models"
	"gorm.io/gorm"
)

// CreateTag inserts a new tag; duplicate names fail on the unique index
func (s *SQLiteStore) CreateTag(ctx context.Context, tag *models.Tag) error {
	return s.db.WithContext(ctx).Omit("Items").Create(tag).Error
}

// ListTags returns all tags ordered by name
func (s *SQLiteStore) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.WithContext(ctx).Order("name").Find(&tags).Error
	return tags, err
}

// UpdateTag replaces the tag's name and color
func (s *SQLiteStore) UpdateTag(ctx context.Context, tag *models.Tag) error {
	result := s.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", tag.ID).Updates(map[string]interface{}{
		"name":  tag.Name,
		"color": tag.Color,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTag removes the tag; its association rows cascade, the items remain
func (s *SQLiteStore) DeleteTag(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Tag{}, id).Error
}
