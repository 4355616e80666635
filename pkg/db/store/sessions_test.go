package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwantia/studytrack/pkg/db/models"
)

func TestLogSessionDefaultsDateToToday(t *testing.T) {
	st, ctx := newTestStore(t)

	session := &models.StudySession{
		StudyItemID:     1,
		DurationMinutes: 45,
		Notes:           "Morning review",
	}
	require.NoError(t, st.LogSession(ctx, session))

	assert.NotZero(t, session.ID)
	assert.Equal(t, time.Now().Format("2006-01-02"), session.Date)
}

func TestLogSessionUnknownItemFails(t *testing.T) {
	st, ctx := newTestStore(t)

	session := &models.StudySession{
		StudyItemID:     999,
		Date:            "2024-12-01",
		DurationMinutes: 30,
	}
	assert.Error(t, st.LogSession(ctx, session))
}

func TestListSessionsOrderedMostRecentFirst(t *testing.T) {
	st, ctx := newTestStore(t)

	dates := []string{"2024-12-03", "2024-12-01", "2024-12-05"}
	for _, date := range dates {
		require.NoError(t, st.LogSession(ctx, &models.StudySession{
			StudyItemID:     2,
			Date:            date,
			DurationMinutes: 25,
		}))
	}

	sessions, err := st.ListSessions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "2024-12-05", sessions[0].Date)
	assert.Equal(t, "2024-12-03", sessions[1].Date)
	assert.Equal(t, "2024-12-01", sessions[2].Date)
}

func TestListSessionsScopedToItem(t *testing.T) {
	st, ctx := newTestStore(t)

	require.NoError(t, st.LogSession(ctx, &models.StudySession{StudyItemID: 1, DurationMinutes: 10}))
	require.NoError(t, st.LogSession(ctx, &models.StudySession{StudyItemID: 2, DurationMinutes: 20}))

	sessions, err := st.ListSessions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.EqualValues(t, 10, sessions[0].DurationMinutes)
}

func TestDeleteItemCascadesSessions(t *testing.T) {
	st, ctx := newTestStore(t)

	require.NoError(t, st.LogSession(ctx, &models.StudySession{StudyItemID: 3, DurationMinutes: 60}))
	require.NoError(t, st.DeleteItem(ctx, 3))

	sessions, err := st.ListSessions(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
