package gridapp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dasdy/uisnippets/db"
	"github.com/dasdy/uisnippets/gridapp"
	"github.com/dasdy/uisnippets/model"
	"github.com/dasdy/uisnippets/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// JournalMock remembers recorded events.
type JournalMock struct {
	db.NopJournal
	Events []model.Event
}

func (m *JournalMock) Record(event *model.Event) error {
	m.Events = append(m.Events, *event)

	return nil
}

func numberColumnID(t *testing.T, ui *gridapp.UI) int {
	t.Helper()

	for _, col := range ui.Grid().Columns() {
		if col.ID() != ui.IconColumn().ID() {
			return col.ID()
		}
	}

	t.Fatal("no number column")

	return 0
}

func TestRowsAreOneToTwenty(t *testing.T) {
	ui := gridapp.NewUI("s", db.NopJournal{}, nil)

	items := ui.Grid().Items()
	require.Len(t, items, 20)

	for i, row := range items {
		assert.Equal(t, i+1, row.Number)
	}
}

func TestColumns(t *testing.T) {
	ui := gridapp.NewUI("s", db.NopJournal{}, nil)

	columns := ui.Grid().Columns()
	require.Len(t, columns, 2)

	assert.Equal(t, "Number", columns[0].Caption())
	assert.Equal(t, widget.RendererText, columns[0].Renderer())
	assert.Same(t, ui.IconColumn(), columns[1])
	assert.Equal(t, widget.RendererImage, columns[1].Renderer())

	for _, row := range ui.Grid().Items() {
		assert.Equal(t, gridapp.IconAsset, columns[1].Value(row))
		assert.Equal(t, fmt.Sprint(row.Number), columns[0].Value(row))
	}
}

func TestIconClickShowsNotification(t *testing.T) {
	for i := range 20 {
		n := i + 1

		t.Run(fmt.Sprintf("renderer click on row %d", n), func(t *testing.T) {
			ui := gridapp.NewUI("s", db.NopJournal{}, nil)

			require.NoError(t, ui.ClickIcon(context.Background(), i, ui.IconColumn().ID()))

			rc := ui.RenderContext()
			require.Len(t, rc.Notifications, 1)
			assert.Equal(t, fmt.Sprintf("%d clicked!", n), rc.Notifications[0].Text)
		})

		t.Run(fmt.Sprintf("cell click in icon column on row %d", n), func(t *testing.T) {
			ui := gridapp.NewUI("s", db.NopJournal{}, nil)

			require.NoError(t, ui.ClickCell(context.Background(), i, ui.IconColumn().ID()))

			rc := ui.RenderContext()
			require.Len(t, rc.Notifications, 1)
			assert.Equal(t, fmt.Sprintf("%d clicked!", n), rc.Notifications[0].Text)
		})
	}
}

func TestClickOtherColumnShowsNothing(t *testing.T) {
	ui := gridapp.NewUI("s", db.NopJournal{}, nil)
	numberColumn := numberColumnID(t, ui)

	for i := range 20 {
		require.NoError(t, ui.ClickCell(context.Background(), i, numberColumn))
	}

	assert.Empty(t, ui.RenderContext().Notifications)
}

func TestNotificationsAreTransient(t *testing.T) {
	ui := gridapp.NewUI("s", db.NopJournal{}, nil)

	require.NoError(t, ui.ClickIcon(context.Background(), 4, ui.IconColumn().ID()))

	assert.Len(t, ui.RenderContext().Notifications, 1)
	assert.Empty(t, ui.RenderContext().Notifications)
}

func TestNumberColumnHasNoRenderer(t *testing.T) {
	ui := gridapp.NewUI("s", db.NopJournal{}, nil)

	err := ui.ClickIcon(context.Background(), 0, numberColumnID(t, ui))

	require.ErrorIs(t, err, widget.ErrNoSuchCell)
	assert.Empty(t, ui.RenderContext().Notifications)
}

func TestIconClickIsJournaled(t *testing.T) {
	journal := &JournalMock{}
	ui := gridapp.NewUI("session-1", journal, nil)

	require.NoError(t, ui.ClickIcon(context.Background(), 6, ui.IconColumn().ID()))

	require.Len(t, journal.Events, 1)
	assert.Equal(t, model.Event{
		Session: "session-1",
		App:     model.AppGrid,
		Kind:    model.EventIconClick,
		Detail:  "7",
	}, journal.Events[0])
}

func TestRenderContext(t *testing.T) {
	ui := gridapp.NewUI("s", db.NopJournal{}, nil)

	rc := ui.RenderContext()

	require.Len(t, rc.Columns, 2)
	assert.Equal(t, "Number", rc.Columns[0].Caption)
	assert.False(t, rc.Columns[0].Image)
	assert.True(t, rc.Columns[1].Image)

	require.Len(t, rc.Rows, 20)
	assert.Equal(t, 0, rc.Rows[0].Index)
	assert.Equal(t, "1", rc.Rows[0].Cells[0].Value)
	assert.Equal(t, gridapp.IconAsset, rc.Rows[0].Cells[1].Value)
	assert.Equal(t, "20", rc.Rows[19].Cells[0].Value)
}
