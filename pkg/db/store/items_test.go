package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mwantia/studytrack/pkg/db/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func uintPtr(v uint) *uint    { return &v }

func TestListItemsOrdering(t *testing.T) {
	st, ctx := newTestStore(t)

	items, err := st.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)

	// In-progress items first (deadline ascending), then planned, then
	// completed. The seed has no on_hold items.
	var ids []uint
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []uint{2, 3, 5, 4, 1}, ids)

	// Status tiers never interleave regardless of deadline
	lastRank := 0
	for _, item := range items {
		rank := models.StatusRank[item.Status]
		assert.GreaterOrEqual(t, rank, lastRank)
		lastRank = rank
	}
}

func TestListItemsIncludesCategoryAndTags(t *testing.T) {
	st, ctx := newTestStore(t)

	items, err := st.ListItems(ctx)
	require.NoError(t, err)

	byID := make(map[uint]models.ItemSummary)
	for _, item := range items {
		byID[item.ID] = item
	}

	assert.Equal(t, "Programming", byID[1].CategoryName)
	assert.Equal(t, "#e74c3c", byID[1].CategoryColor)
	assert.Equal(t, "Python, Video", byID[1].TagNames)
	assert.Equal(t, "SQL, Important", byID[2].TagNames)
	assert.Empty(t, byID[3].TagNames)
}

func TestCreateItemWithTags(t *testing.T) {
	st, ctx := newTestStore(t)

	item := &models.StudyItem{
		Title:      "Linear Algebra",
		CategoryID: uintPtr(2),
		Status:     models.StatusPlanned,
		Priority:   2,
	}
	require.NoError(t, st.CreateItem(ctx, item, []uint{1, 4}))
	require.NotZero(t, item.ID)

	got, tags, err := st.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", got.Title)
	assert.Nil(t, got.Rating)
	require.Len(t, tags, 2)
}

func TestCreateItemUnknownTagRollsBack(t *testing.T) {
	st, ctx := newTestStore(t)

	item := &models.StudyItem{
		Title:    "Orphan",
		Status:   models.StatusPlanned,
		Priority: 3,
	}
	err := st.CreateItem(ctx, item, []uint{999})
	require.Error(t, err)

	// The item insert must have rolled back with the failed association
	var count int64
	require.NoError(t, st.DB().Model(&models.StudyItem{}).Where("title = ?", "Orphan").Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetItemNotFound(t *testing.T) {
	st, ctx := newTestStore(t)

	_, _, err := st.GetItem(ctx, 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateItemReplacesTagAssociations(t *testing.T) {
	st, ctx := newTestStore(t)

	item := &models.StudyItem{
		Title:    "Tagged",
		Status:   models.StatusPlanned,
		Priority: 3,
	}
	require.NoError(t, st.CreateItem(ctx, item, []uint{1}))

	updated := &models.StudyItem{
		Title:    "Tagged",
		Status:   models.StatusInProgress,
		Priority: 3,
	}
	require.NoError(t, st.UpdateItem(ctx, item.ID, updated, []uint{2, 3}))

	got, tags, err := st.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Status)

	var tagIDs []uint
	for _, tag := range tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	assert.ElementsMatch(t, []uint{2, 3}, tagIDs)
}

func TestUpdateItemClearsOptionalFields(t *testing.T) {
	st, ctx := newTestStore(t)

	// Seed item 1 has a rating, deadline and category; a full replace with
	// empty optionals must null them out
	updated := &models.StudyItem{
		Title:    "Python for Beginners",
		Status:   models.StatusCompleted,
		Priority: 1,
	}
	require.NoError(t, st.UpdateItem(ctx, 1, updated, nil))

	got, tags, err := st.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.Rating)
	assert.Nil(t, got.Deadline)
	assert.Nil(t, got.CategoryID)
	assert.Empty(t, tags)
}

func TestUpdateItemNotFound(t *testing.T) {
	st, ctx := newTestStore(t)

	err := st.UpdateItem(ctx, 999, &models.StudyItem{Title: "x", Status: models.StatusPlanned, Priority: 3}, nil)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteItemCascadesAssociationsKeepsTags(t *testing.T) {
	st, ctx := newTestStore(t)

	// Seed item 1 is tagged Python and Video
	require.NoError(t, st.DeleteItem(ctx, 1))

	var associations int64
	require.NoError(t, st.DB().Model(&models.StudyItemTag{}).
		Where("study_item_id = ?", 1).Count(&associations).Error)
	assert.Zero(t, associations)

	tags, err := st.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 6)
}

func TestItemConstraints(t *testing.T) {
	st, ctx := newTestStore(t)

	cases := []struct {
		name string
		item *models.StudyItem
	}{
		{"rating above range", &models.StudyItem{Title: "x", Status: models.StatusPlanned, Priority: 3, Rating: intPtr(6)}},
		{"rating below range", &models.StudyItem{Title: "x", Status: models.StatusPlanned, Priority: 3, Rating: intPtr(0)}},
		{"unknown status", &models.StudyItem{Title: "x", Status: "done", Priority: 3}},
		{"empty status", &models.StudyItem{Title: "x", Status: "", Priority: 3}},
		{"priority above range", &models.StudyItem{Title: "x", Status: models.StatusPlanned, Priority: 6}},
		{"priority zero", &models.StudyItem{Title: "x", Status: models.StatusPlanned, Priority: 0}},
		{"negative hours", &models.StudyItem{Title: "x", Status: models.StatusPlanned, Priority: 3, HoursSpent: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, st.CreateItem(ctx, tc.item, nil))
		})
	}
}

func TestSearchItemsNoFiltersMatchesListItems(t *testing.T) {
	st, ctx := newTestStore(t)

	listed, err := st.ListItems(ctx)
	require.NoError(t, err)

	searched, err := st.SearchItems(ctx, SearchFilter{})
	require.NoError(t, err)

	// Identical sets; only the ordering differs
	require.Len(t, searched, len(listed))
	listedIDs := make([]uint, 0, len(listed))
	searchedIDs := make([]uint, 0, len(searched))
	for _, item := range listed {
		listedIDs = append(listedIDs, item.ID)
	}
	for _, item := range searched {
		searchedIDs = append(searchedIDs, item.ID)
	}
	assert.ElementsMatch(t, listedIDs, searchedIDs)
}

func TestSearchItemsFilters(t *testing.T) {
	st, ctx := newTestStore(t)

	// Case-insensitive substring on title or description
	items, err := st.SearchItems(ctx, SearchFilter{Query: "python"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].ID)

	items, err = st.SearchItems(ctx, SearchFilter{Query: "subqueries"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].ID)

	items, err = st.SearchItems(ctx, SearchFilter{Status: models.StatusInProgress})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = st.SearchItems(ctx, SearchFilter{CategoryID: 1})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Tag 3 (Important) is attached to items 2 and 4
	items, err = st.SearchItems(ctx, SearchFilter{TagID: 3})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Filters combine with AND
	items, err = st.SearchItems(ctx, SearchFilter{TagID: 3, Status: models.StatusPlanned})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 4, items[0].ID)

	items, err = st.SearchItems(ctx, SearchFilter{Query: "nothing matches this"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearchItemsOrderedByDeadline(t *testing.T) {
	st, ctx := newTestStore(t)

	items, err := st.SearchItems(ctx, SearchFilter{})
	require.NoError(t, err)
	require.Len(t, items, 5)

	var previous string
	for _, item := range items {
		if item.Deadline == nil {
			continue
		}
		assert.GreaterOrEqual(t, *item.Deadline, previous)
		previous = *item.Deadline
	}
}
