package migrations

import (
	"github.com/mwantia/studytrack/pkg/db/models"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func uintPtr(v uint) *uint { return &v }

// seedDefaultData inserts the starter data set a fresh database ships with:
// 5 categories, 6 tags, 5 study items and 6 item/tag associations.
// IDs are explicit so the association rows stay deterministic.
func seedDefaultData(db *gorm.DB) error {
	categories := []models.Category{
		{ID: 1, Name: "Programming", Description: "Software development courses", Color: "#e74c3c", IsDefault: true},
		{ID: 2, Name: "Mathematics", Description: "Higher mathematics and algorithms", Color: "#3498db"},
		{ID: 3, Name: "Foreign Languages", Description: "Language learning", Color: "#2ecc71"},
		{ID: 4, Name: "Databases", Description: "SQL and NoSQL", Color: "#f39c12"},
		{ID: 5, Name: "Soft Skills", Description: "Personal development", Color: "#9b59b6"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	tags := []models.Tag{
		{ID: 1, Name: "Python", Color: "#3498db"},
		{ID: 2, Name: "SQL", Color: "#f39c12"},
		{ID: 3, Name: "Important", Color: "#e74c3c"},
		{ID: 4, Name: "Exam", Color: "#9b59b6"},
		{ID: 5, Name: "Coursework", Color: "#2ecc71"},
		{ID: 6, Name: "Video", Color: "#1abc9c"},
	}
	if err := db.Create(&tags).Error; err != nil {
		return err
	}

	items := []models.StudyItem{
		{ID: 1, Title: "Python for Beginners", Description: "Python language basics",
			CategoryID: uintPtr(1), Rating: intPtr(5), Status: models.StatusCompleted,
			Deadline: strPtr("2024-12-01"), HoursSpent: 40, Priority: 1},
		{ID: 2, Title: "Advanced SQL Queries", Description: "Advanced JOINs and subqueries",
			CategoryID: uintPtr(4), Rating: intPtr(4), Status: models.StatusInProgress,
			Deadline: strPtr("2024-12-15"), HoursSpent: 15, Priority: 2},
		{ID: 3, Title: "Intermediate English", Description: "Conversation practice",
			CategoryID: uintPtr(3), Rating: intPtr(3), Status: models.StatusInProgress,
			Deadline: strPtr("2024-12-20"), HoursSpent: 20, Priority: 3},
		{ID: 4, Title: "Thesis Project", Description: "Building a study tracker",
			CategoryID: uintPtr(1), Rating: intPtr(5), Status: models.StatusPlanned,
			Deadline: strPtr("2025-01-15"), HoursSpent: 0, Priority: 1},
		{ID: 5, Title: "Sorting Algorithms", Description: "Classic algorithm study",
			CategoryID: uintPtr(2), Rating: intPtr(4), Status: models.StatusPlanned,
			Deadline: strPtr("2024-12-10"), HoursSpent: 0, Priority: 2},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	associations := []models.StudyItemTag{
		{StudyItemID: 1, TagID: 1},
		{StudyItemID: 1, TagID: 6},
		{StudyItemID: 2, TagID: 2},
		{StudyItemID: 2, TagID: 3},
		{StudyItemID: 4, TagID: 3},
		{StudyItemID: 4, TagID: 5},
	}
	return db.Create(&associations).Error
}

func removeDefaultData(db *gorm.DB) error {
	statements := []string{
		"DELETE FROM study_item_tags WHERE study_item_id <= 5",
		"DELETE FROM study_items WHERE id <= 5",
		"DELETE FROM tags WHERE id <= 6",
		"DELETE FROM categories WHERE id <= 5",
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
