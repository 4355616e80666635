package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwantia/studytrack/pkg/db/models"
)

func TestStatisticsSeedScenario(t *testing.T) {
	st, ctx := newTestStore(t)

	stats, err := st.Statistics(ctx)
	require.NoError(t, err)

	// The seed: 5 items with hours {40,15,20,0,0} and ratings {5,4,3,5,4}
	assert.EqualValues(t, 5, stats.Total)
	assert.InDelta(t, 75.0, stats.TotalHours, 0.001)
	assert.InDelta(t, 4.2, stats.AvgRating, 0.001)

	assert.EqualValues(t, 2, stats.ByStatus[models.StatusInProgress])
	assert.EqualValues(t, 2, stats.ByStatus[models.StatusPlanned])
	assert.EqualValues(t, 1, stats.ByStatus[models.StatusCompleted])

	assert.EqualValues(t, 2, stats.ByCategory["Programming"])
	assert.EqualValues(t, 1, stats.ByCategory["Databases"])
	assert.EqualValues(t, 1, stats.ByCategory["Foreign Languages"])
	assert.EqualValues(t, 1, stats.ByCategory["Mathematics"])
}

func TestStatisticsOverdue(t *testing.T) {
	st, ctx := newTestStore(t)

	before, err := st.Statistics(ctx)
	require.NoError(t, err)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	// Past deadline, not completed: counts
	overdue := &models.StudyItem{
		Title:    "Late",
		Status:   models.StatusPlanned,
		Priority: 3,
		Deadline: strPtr(yesterday),
	}
	require.NoError(t, st.CreateItem(ctx, overdue, nil))

	// Past deadline but completed: does not count
	done := &models.StudyItem{
		Title:    "Finished late",
		Status:   models.StatusCompleted,
		Priority: 3,
		Deadline: strPtr(yesterday),
	}
	require.NoError(t, st.CreateItem(ctx, done, nil))

	// Future deadline: does not count
	upcoming := &models.StudyItem{
		Title:    "Upcoming",
		Status:   models.StatusPlanned,
		Priority: 3,
		Deadline: strPtr(tomorrow),
	}
	require.NoError(t, st.CreateItem(ctx, upcoming, nil))

	// No deadline: does not count
	open := &models.StudyItem{
		Title:    "Open ended",
		Status:   models.StatusPlanned,
		Priority: 3,
	}
	require.NoError(t, st.CreateItem(ctx, open, nil))

	after, err := st.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.OverdueCount+1, after.OverdueCount)
}

func TestStatisticsExcludesUncategorizedFromCategoryBreakdown(t *testing.T) {
	st, ctx := newTestStore(t)

	item := &models.StudyItem{
		Title:    "Uncategorized",
		Status:   models.StatusPlanned,
		Priority: 3,
	}
	require.NoError(t, st.CreateItem(ctx, item, nil))

	stats, err := st.Statistics(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 6, stats.Total)

	var categorized int64
	for _, count := range stats.ByCategory {
		categorized += count
	}
	assert.EqualValues(t, 5, categorized)
}

func TestStatisticsEmptyDatabase(t *testing.T) {
	st, ctx := newTestStore(t)

	items, err := st.ListItems(ctx)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, st.DeleteItem(ctx, item.ID))
	}

	stats, err := st.Statistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.AvgRating)
	assert.Zero(t, stats.OverdueCount)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.ByCategory)
}
