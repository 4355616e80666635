package store

import (
	"context"
	"time"

	"github.com/mwantia/studytrack/pkg/db/models"
)

type groupCount struct {
	Key   string
	Count int64
}

// Statistics computes the aggregate report. Each metric is its own query;
// the category breakdown inner-joins, so items without a category appear in
// Total but not in ByCategory.
func (s *SQLiteStore) Statistics(ctx context.Context) (*Statistics, error) {
	db := s.db.WithContext(ctx)
	stats := &Statistics{
		ByStatus:   make(map[string]int64),
		ByCategory: make(map[string]int64),
	}

	if err := db.Model(&models.StudyItem{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var byStatus []groupCount
	err := db.Raw(`SELECT status AS key, COUNT(*) AS count
		FROM study_items
		GROUP BY status`).Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Key] = row.Count
	}

	var byCategory []groupCount
	err = db.Raw(`SELECT c.name AS key, COUNT(*) AS count
		FROM study_items si
		JOIN categories c ON si.category_id = c.id
		GROUP BY c.name`).Scan(&byCategory).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byCategory {
		stats.ByCategory[row.Key] = row.Count
	}

	err = db.Raw(`SELECT COALESCE(AVG(rating), 0)
		FROM study_items
		WHERE rating IS NOT NULL`).Scan(&stats.AvgRating).Error
	if err != nil {
		return nil, err
	}

	err = db.Raw(`SELECT COALESCE(SUM(hours_spent), 0) FROM study_items`).
		Scan(&stats.TotalHours).Error
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	err = db.Model(&models.StudyItem{}).
		Where("deadline IS NOT NULL AND deadline < ? AND status != ?", today, models.StatusCompleted).
		Count(&stats.OverdueCount).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
