package models

// DefaultTagColor is applied when a tag is created without one.
const DefaultTagColor = "#2ecc71"

// Tag represents a many-to-many label attachable to study items.
// Deleting a tag removes only its association rows, never the items.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Color string `gorm:"type:text;default:'#2ecc71'" json:"color"`

	// Relationships
	Items []StudyItem `gorm:"many2many:study_item_tags" json:"items,omitempty"`
}

func (Tag) TableName() string {
	return "tags"
}
