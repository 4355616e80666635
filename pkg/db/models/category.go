package models

// DefaultCategoryColor is applied when a category is created without one.
const DefaultCategoryColor = "#3498db"

// Category represents a user-defined grouping label for study items.
// At most one category carries IsDefault; the store clears the flag on
// every other row whenever a default is written.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Color       string `gorm:"type:text;default:'#3498db'" json:"color"`
	IsDefault   bool   `gorm:"default:false" json:"is_default"`

	// Relationships
	Items []StudyItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
