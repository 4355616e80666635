package store

import (
	"context"
	"time"

	"github.com/mwantia/studytrack/pkg/db/models"
)

// LogSession records a study sitting for an item. An empty date defaults
// to today.
func (s *SQLiteStore) LogSession(ctx context.Context, session *models.StudySession) error {
	if session.Date == "" {
		session.Date = time.Now().Format("2006-01-02")
	}
	return s.db.WithContext(ctx).Omit("StudyItem").Create(session).Error
}

// ListSessions returns the sessions logged for an item, most recent first
func (s *SQLiteStore) ListSessions(ctx context.Context, itemID uint) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := s.db.WithContext(ctx).
		Where("study_item_id = ?", itemID).
		Order("date DESC, id DESC").
		Find(&sessions).Error
	return sessions, err
}
