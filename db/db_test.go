package db_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dasdy/uisnippets/db"
	"github.com/dasdy/uisnippets/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectToMemoryDB(t *testing.T) {
	t.Run("should record and count correctly", func(t *testing.T) {
		journal, err := db.ConnectDB(":memory:")
		require.NoError(t, err)

		defer journal.Close()

		cnt, err := journal.Count(model.AppGrid, model.EventIconClick)
		require.NoError(t, err)
		assert.Zero(t, cnt)

		for i := range 3 {
			event := model.Event{Session: "s1", App: model.AppGrid, Kind: model.EventIconClick, Detail: string(rune('1' + i))}
			require.NoError(t, journal.Record(&event))
			assert.NotEmpty(t, event.ID)
			assert.False(t, event.At.IsZero())
		}

		require.NoError(t, journal.Record(&model.Event{Session: "s1", App: model.AppMenu, Kind: model.EventNavigate, Detail: "view1"}))

		cnt, err = journal.Count(model.AppGrid, model.EventIconClick)
		require.NoError(t, err)
		assert.Equal(t, 3, cnt)

		cnt, err = journal.Count(model.AppMenu, model.EventNavigate)
		require.NoError(t, err)
		assert.Equal(t, 1, cnt)
	})
}

func TestRecent(t *testing.T) {
	journal, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer journal.Close()

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, detail := range []string{"", "view1", "view2"} {
		require.NoError(t, journal.Record(&model.Event{
			Session: "s",
			App:     model.AppMenu,
			Kind:    model.EventNavigate,
			Detail:  detail,
			At:      base.Add(time.Duration(i) * time.Minute),
		}))
	}

	events, err := journal.Recent(model.AppMenu, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "view2", events[0].Detail)
	assert.Equal(t, "view1", events[1].Detail)

	events, err = journal.Recent(model.AppGrid, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestOpen(t *testing.T) {
	t.Run("empty path gives a no-op journal", func(t *testing.T) {
		journal, err := db.Open("")
		require.NoError(t, err)
		assert.IsType(t, db.NopJournal{}, journal)

		require.NoError(t, journal.Record(&model.Event{}))
		cnt, err := journal.Count(model.AppGrid, model.EventIconClick)
		require.NoError(t, err)
		assert.Zero(t, cnt)
	})

	t.Run("file path persists events", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.sqlite")

		journal, err := db.Open(path)
		require.NoError(t, err)
		require.NoError(t, journal.Record(&model.Event{Session: "s", App: model.AppGrid, Kind: model.EventIconClick, Detail: "4"}))
		journal.Close()

		reopened, err := db.Open(path)
		require.NoError(t, err)

		defer reopened.Close()

		cnt, err := reopened.Count(model.AppGrid, model.EventIconClick)
		require.NoError(t, err)
		assert.Equal(t, 1, cnt)
	})
}
