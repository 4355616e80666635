package store

import (
	"context"

	"github.com/mwantia/studytrack/pkg/db/models"
)

// SearchFilter holds the optional item search predicates. Zero values are
// not applied; supplied predicates combine with AND.
type SearchFilter struct {
	Query      string // case-insensitive substring match on title or description
	Status     string
	CategoryID uint
	TagID      uint
}

// Statistics is the aggregate report over all study items.
type Statistics struct {
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"by_status"`
	ByCategory   map[string]int64 `json:"by_category"` // items without a category are excluded
	AvgRating    float64          `json:"avg_rating"`  // over non-null ratings, 0 when none
	TotalHours   float64          `json:"total_hours"`
	OverdueCount int64            `json:"overdue"` // deadline before today, status not completed
}

// StudyStore defines the interface for database operations
type StudyStore interface {
	// Lifecycle
	Connect(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
	Health(ctx context.Context) error

	// Item operations
	CreateItem(ctx context.Context, item *models.StudyItem, tagIDs []uint) error
	ListItems(ctx context.Context) ([]models.ItemSummary, error)
	GetItem(ctx context.Context, id uint) (*models.StudyItem, []models.Tag, error)
	UpdateItem(ctx context.Context, id uint, item *models.StudyItem, tagIDs []uint) error
	DeleteItem(ctx context.Context, id uint) error
	SearchItems(ctx context.Context, filter SearchFilter) ([]models.ItemSummary, error)

	// Category operations
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
	CountItemsInCategory(ctx context.Context, id uint) (int64, error)

	// Tag operations
	CreateTag(ctx context.Context, tag *models.Tag) error
	ListTags(ctx context.Context) ([]models.Tag, error)
	UpdateTag(ctx context.Context, tag *models.Tag) error
	DeleteTag(ctx context.Context, id uint) error

	// Session operations
	LogSession(ctx context.Context, session *models.StudySession) error
	ListSessions(ctx context.Context, itemID uint) ([]models.StudySession, error)

	// Statistics
	Statistics(ctx context.Context) (*Statistics, error)
}
