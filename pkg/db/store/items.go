package store

import (
	"context"

	"github.com/mwantia/studytrack/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// summaryColumns are shared by ListItems and SearchItems; both return the
// item joined with its category and a comma-joined tag list.
const summaryColumns = `
	si.id, si.title, si.description, si.category_id, si.rating, si.status,
	si.created_at, si.deadline, si.hours_spent, si.priority,
	COALESCE(c.name, '') AS category_name,
	COALESCE(c.color, '') AS category_color,
	COALESCE(GROUP_CONCAT(t.name, ', '), '') AS tag_names`

const summaryJoins = `
	FROM study_items si
	LEFT JOIN categories c ON si.category_id = c.id
	LEFT JOIN study_item_tags sit ON si.id = sit.study_item_id
	LEFT JOIN tags t ON sit.tag_id = t.id`

// CreateItem inserts the item and one association row per tag id inside a
// single transaction. The caller is expected to have validated the title;
// range and enum violations surface as constraint errors from the engine.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.StudyItem, tagIDs []uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return err
		}

		for _, tagID := range tagIDs {
			assoc := models.StudyItemTag{StudyItemID: item.ID, TagID: tagID}
			if err := tx.Create(&assoc).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListItems returns every item, active statuses first (in_progress, planned,
// on_hold, completed) and ascending deadline within a status.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]models.ItemSummary, error) {
	var items []models.ItemSummary
	err := s.db.WithContext(ctx).Raw(`SELECT` + summaryColumns + summaryJoins + `
	GROUP BY si.id
	ORDER BY
		CASE si.status
			WHEN 'in_progress' THEN 1
			WHEN 'planned' THEN 2
			WHEN 'on_hold' THEN 3
			WHEN 'completed' THEN 4
		END,
		si.deadline ASC`).Scan(&items).Error
	return items, err
}

// GetItem returns the raw item row and its tags
func (s *SQLiteStore) GetItem(ctx context.Context, id uint) (*models.StudyItem, []models.Tag, error) {
	var item models.StudyItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, nil, err
	}

	var tags []models.Tag
	err := s.db.WithContext(ctx).
		Joins("JOIN study_item_tags sit ON sit.tag_id = tags.id").
		Where("sit.study_item_id = ?", id).
		Find(&tags).Error
	if err != nil {
		return nil, nil, err
	}

	return &item, tags, nil
}

// UpdateItem replaces every mutable field of the item, then replaces its
// tag associations with the provided set. Both steps run in one transaction
// so a failure leaves the previous state intact.
func (s *SQLiteStore) UpdateItem(ctx context.Context, id uint, item *models.StudyItem, tagIDs []uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.StudyItem{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       item.Title,
			"description": item.Description,
			"category_id": item.CategoryID,
			"rating":      item.Rating,
			"status":      item.Status,
			"deadline":    item.Deadline,
			"hours_spent": item.HoursSpent,
			"priority":    item.Priority,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("study_item_id = ?", id).Delete(&models.StudyItemTag{}).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			assoc := models.StudyItemTag{StudyItemID: id, TagID: tagID}
			if err := tx.Create(&assoc).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteItem removes the item; association and session rows cascade
func (s *SQLiteStore) DeleteItem(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.StudyItem{}, id).Error
}

// SearchItems returns the items matching every supplied filter, ordered by
// deadline alone. Unlike ListItems there is no status tiering; the two
// orderings have always differed and callers rely on that.
func (s *SQLiteStore) SearchItems(ctx context.Context, filter SearchFilter) ([]models.ItemSummary, error) {
	sql := `SELECT DISTINCT` + summaryColumns + summaryJoins + `
	WHERE 1=1`
	var args []interface{}

	if filter.Query != "" {
		sql += " AND (LOWER(si.title) LIKE LOWER(?) OR LOWER(si.description) LIKE LOWER(?))"
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Status != "" {
		sql += " AND si.status = ?"
		args = append(args, filter.Status)
	}
	if filter.CategoryID != 0 {
		sql += " AND si.category_id = ?"
		args = append(args, filter.CategoryID)
	}
	if filter.TagID != 0 {
		sql += " AND sit.tag_id = ?"
		args = append(args, filter.TagID)
	}

	sql += " GROUP BY si.id ORDER BY si.deadline ASC"

	var items []models.ItemSummary
	err := s.db.WithContext(ctx).Raw(sql, args...).Scan(&items).Error
	return items, err
}
