package migrations

import (
	"gorm.io/gorm"
)

// The schema is created with raw DDL instead of AutoMigrate so the CHECK
// constraints and foreign-key actions are exactly the ones the store relies
// on: ratings and priorities clamped to 1..5, the four-value status enum,
// SET NULL on category deletion and CASCADE on association/session rows.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		color TEXT DEFAULT '#3498db',
		is_default BOOLEAN DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS study_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		category_id INTEGER,
		rating INTEGER CHECK(rating >= 1 AND rating <= 5),
		status TEXT DEFAULT 'planned' CHECK(status IN ('planned', 'in_progress', 'completed', 'on_hold')),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		deadline DATE,
		hours_spent REAL DEFAULT 0 CHECK(hours_spent >= 0),
		priority INTEGER DEFAULT 3 CHECK(priority >= 1 AND priority <= 5),
		FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		color TEXT DEFAULT '#2ecc71'
	)`,
	`CREATE TABLE IF NOT EXISTS study_item_tags (
		study_item_id INTEGER,
		tag_id INTEGER,
		PRIMARY KEY (study_item_id, tag_id),
		FOREIGN KEY (study_item_id) REFERENCES study_items (id) ON DELETE CASCADE,
		FOREIGN KEY (tag_id) REFERENCES tags (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS study_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		study_item_id INTEGER,
		date DATE DEFAULT CURRENT_DATE,
		duration_minutes INTEGER,
		notes TEXT,
		FOREIGN KEY (study_item_id) REFERENCES study_items (id) ON DELETE CASCADE
	)`,
}

func createSchema(db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func dropSchema(db *gorm.DB) error {
	// Reverse order so foreign keys never dangle mid-drop
	tables := []string{
		"study_sessions",
		"study_item_tags",
		"tags",
		"study_items",
		"categories",
	}
	for _, table := range tables {
		if err := db.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
