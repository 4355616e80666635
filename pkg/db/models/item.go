package models

import (
	"time"
)

// Item status values. ListItems sorts by StatusRank, not alphabetically.
const (
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
)

// StatusRank maps a status to its position in the list ordering:
// active work first, finished work last.
var StatusRank = map[string]int{
	StatusInProgress: 1,
	StatusPlanned:    2,
	StatusOnHold:     3,
	StatusCompleted:  4,
}

// ValidStatus reports whether s is one of the four known status values.
func ValidStatus(s string) bool {
	_, ok := StatusRank[s]
	return ok
}

// StudyItem represents a single trackable unit of study (course, task)
type StudyItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:text;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	CategoryID  *uint   `gorm:"index" json:"category_id"`
	Rating      *int    `json:"rating"`                    // 1..5, nil when unrated
	Status      string  `gorm:"type:text" json:"status"`   // no gorm default: writes state it explicitly
	Deadline    *string `gorm:"type:date" json:"deadline"` // ISO date YYYY-MM-DD
	HoursSpent  float64 `gorm:"default:0" json:"hours_spent"`
	Priority    int     `json:"priority"` // 1..5, no gorm default

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags     []Tag     `gorm:"many2many:study_item_tags" json:"tags,omitempty"`
}

func (StudyItem) TableName() string {
	return "study_items"
}

// StudyItemTag is the item/tag association row. Rows cascade when either
// side is deleted.
type StudyItemTag struct {
	StudyItemID uint `gorm:"primaryKey" json:"study_item_id"`
	TagID       uint `gorm:"primaryKey" json:"tag_id"`
}

func (StudyItemTag) TableName() string {
	return "study_item_tags"
}

// ItemSummary is the joined list row returned by ListItems and SearchItems:
// the item plus its category name/color and a comma-joined tag list.
type ItemSummary struct {
	StudyItem

	CategoryName  string `json:"category_name"`
	CategoryColor string `json:"category_color"`
	TagNames      string `json:"tag_names"` // "Python, SQL" or empty
}
