package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mwantia/studytrack/pkg/db/models"
)

func TestDeleteTagCascadesAssociationsKeepsItems(t *testing.T) {
	st, ctx := newTestStore(t)

	// Seed tag 3 (Important) is attached to items 2 and 4
	var associations int64
	require.NoError(t, st.DB().Model(&models.StudyItemTag{}).
		Where("tag_id = ?", 3).Count(&associations).Error)
	require.EqualValues(t, 2, associations)

	require.NoError(t, st.DeleteTag(ctx, 3))

	require.NoError(t, st.DB().Model(&models.StudyItemTag{}).
		Where("tag_id = ?", 3).Count(&associations).Error)
	assert.Zero(t, associations)

	// The tagged items survive untouched
	_, tags, err := st.GetItem(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	_, tags, err = st.GetItem(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	items, err := st.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestCreateTagDuplicateNameFails(t *testing.T) {
	st, ctx := newTestStore(t)

	err := st.CreateTag(ctx, &models.Tag{Name: "Python", Color: "#123456"})
	require.Error(t, err)
}

func TestUpdateTag(t *testing.T) {
	st, ctx := newTestStore(t)

	tag := models.Tag{ID: 6, Name: "Lecture", Color: "#34495e"}
	require.NoError(t, st.UpdateTag(ctx, &tag))

	tags, err := st.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 6)

	byID := make(map[uint]models.Tag)
	for _, tg := range tags {
		byID[tg.ID] = tg
	}
	assert.Equal(t, "Lecture", byID[6].Name)
	assert.Equal(t, "#34495e", byID[6].Color)
}

func TestUpdateTagNotFound(t *testing.T) {
	st, ctx := newTestStore(t)

	err := st.UpdateTag(ctx, &models.Tag{ID: 999, Name: "x"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListTagsOrderedByNameAfterMutation(t *testing.T) {
	st, ctx := newTestStore(t)

	require.NoError(t, st.CreateTag(ctx, &models.Tag{Name: "Audio", Color: "#7f8c8d"}))

	tags, err := st.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 7)
	assert.Equal(t, "Audio", tags[0].Name)

	for i := 1; i < len(tags); i++ {
		assert.LessOrEqual(t, tags[i-1].Name, tags[i].Name)
	}
}
