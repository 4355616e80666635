package models

// StudySession records a single sitting spent on an item. Sessions cascade
// when their item is deleted and do not feed back into the item's
// hours_spent total.
type StudySession struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	StudyItemID     uint   `gorm:"not null;index" json:"study_item_id"`
	Date            string `gorm:"type:date" json:"date"` // ISO date YYYY-MM-DD
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `gorm:"type:text" json:"notes"`

	// Relationships
	StudyItem StudyItem `gorm:"foreignKey:StudyItemID" json:"study_item,omitempty"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
