package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "migrations.db")
	dsn := path + "?_pragma=foreign_keys(1)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})

	return db
}

func TestMigrateAppliesAllMigrations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	migrator := NewMigrator(db)
	require.NoError(t, migrator.Migrate(ctx))

	statuses, err := migrator.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.True(t, status.Applied, "migration %d should be applied", status.Version)
	}

	for _, table := range []string{"categories", "tags", "study_items", "study_item_tags", "study_sessions"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestMigrateTwiceIsNoOp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	migrator := NewMigrator(db)
	require.NoError(t, migrator.Migrate(ctx))
	require.NoError(t, migrator.Migrate(ctx))

	var categories int64
	require.NoError(t, db.Table("categories").Count(&categories).Error)
	assert.EqualValues(t, 5, categories)
}

func TestRollbackRemovesSeedData(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	migrator := NewMigrator(db)
	require.NoError(t, migrator.Migrate(ctx))

	require.NoError(t, migrator.Rollback(ctx))

	var categories int64
	require.NoError(t, db.Table("categories").Count(&categories).Error)
	assert.Zero(t, categories)

	statuses, err := migrator.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Applied)
	assert.False(t, statuses[1].Applied)
}

func TestRollbackWithoutHistoryFails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	migrator := NewMigrator(db)
	require.NoError(t, db.AutoMigrate(&migrationHistory{}))
	assert.Error(t, migrator.Rollback(ctx))
}

func TestSeedSurvivesFullDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	migrator := NewMigrator(db)
	require.NoError(t, migrator.Migrate(ctx))

	require.NoError(t, db.Exec("DELETE FROM study_items").Error)
	require.NoError(t, db.Exec("DELETE FROM tags").Error)
	require.NoError(t, db.Exec("DELETE FROM categories").Error)

	// The history marker keeps the seed from re-running
	require.NoError(t, migrator.Migrate(ctx))

	var categories int64
	require.NoError(t, db.Table("categories").Count(&categories).Error)
	assert.Zero(t, categories)
}
