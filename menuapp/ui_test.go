package menuapp_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dasdy/uisnippets/db"
	"github.com/dasdy/uisnippets/menuapp"
	"github.com/dasdy/uisnippets/metrics"
	"github.com/dasdy/uisnippets/model"
	"github.com/dasdy/uisnippets/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type JournalMock struct {
	db.NopJournal
	Events []model.Event
}

func (m *JournalMock) Record(event *model.Event) error {
	m.Events = append(m.Events, *event)

	return nil
}

func renderContent(t *testing.T, ui *menuapp.UI) string {
	t.Helper()

	rc := ui.RenderContext()
	require.NotNil(t, rc.Content)

	var buf bytes.Buffer
	require.NoError(t, rc.Content.Render(context.Background(), &buf))

	return buf.String()
}

func TestNavigateToView1(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	require.NoError(t, ui.NavigateTo(context.Background(), "view1"))

	assert.Equal(t, 1, ui.Container().Count())
	assert.IsType(t, &menuapp.View1{}, ui.Container().Content())
	assert.Equal(t, model.RouteView1, ui.State())
}

func TestNavigateReplacesContent(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	require.NoError(t, ui.NavigateTo(context.Background(), "view1"))
	require.NoError(t, ui.NavigateTo(context.Background(), "view2"))

	assert.Equal(t, 1, ui.Container().Count())
	assert.IsType(t, &menuapp.View2{}, ui.Container().Content())

	html := renderContent(t, ui)
	assert.Contains(t, html, "View 2")
	assert.NotContains(t, html, "View 1")
}

func TestRootShowsDefaultView(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	require.NoError(t, ui.NavigateTo(context.Background(), ""))

	assert.IsType(t, &menuapp.DefaultView{}, ui.Container().Content())
	assert.Equal(t, model.RouteDefault, ui.State())
}

func TestUnknownRouteFallsBackToDefault(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	err := ui.NavigateTo(context.Background(), "view3")

	require.ErrorIs(t, err, nav.ErrUnknownRoute)
	assert.IsType(t, &menuapp.DefaultView{}, ui.Container().Content())
}

func TestUnknownRouteShowsWarning(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	_ = ui.NavigateTo(context.Background(), "/view3/")

	notes := ui.RenderContext().Notifications
	require.Len(t, notes, 1)
	assert.Equal(t, model.NotificationWarning, notes[0].Kind)
	assert.Equal(t, "Nothing at /view3, showing the default view", notes[0].Text)

	assert.Empty(t, ui.RenderContext().Notifications)

	require.NoError(t, ui.NavigateTo(context.Background(), "view1"))
	assert.Empty(t, ui.RenderContext().Notifications)
}

func TestFallbackRemembersRequestedState(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	assert.False(t, ui.Shows(""))

	_ = ui.NavigateTo(context.Background(), "nowhere")

	assert.Equal(t, "nowhere", ui.Location())
	assert.Equal(t, "", ui.Address())
	assert.True(t, ui.Shows("nowhere"))
	assert.True(t, ui.Shows("/nowhere/"))
	assert.True(t, ui.Shows(""))
	assert.False(t, ui.Shows("view1"))

	require.NoError(t, ui.NavigateTo(context.Background(), "view1/7"))

	assert.Equal(t, "view1/7", ui.Address())
	assert.True(t, ui.Shows("view1/7"))
	assert.False(t, ui.Shows("nowhere"))
	assert.False(t, ui.Shows(""))
}

func TestViewParameters(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	require.NoError(t, ui.NavigateTo(context.Background(), "view2/42"))

	assert.IsType(t, &menuapp.View2{}, ui.Container().Content())
	assert.Contains(t, renderContent(t, ui), "View 2 (42)")
}

func TestMenuAlwaysHasThreeItems(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	for _, state := range []string{"", "view1", "view2", "missing"} {
		t.Run(state, func(t *testing.T) {
			_ = ui.NavigateTo(context.Background(), state)

			items := ui.RenderContext().Items
			require.Len(t, items, 3)
			assert.Equal(t, "Menu", items[0].Label)
			assert.True(t, items[0].Title)
			assert.Equal(t, "View 1", items[1].Label)
			assert.Equal(t, model.RouteView1, items[1].Route)
			assert.Equal(t, "View 2", items[2].Label)
			assert.Equal(t, model.RouteView2, items[2].Route)
		})
	}
}

func TestActiveMenuItem(t *testing.T) {
	ui := menuapp.NewUI("s", db.NopJournal{}, nil)

	require.NoError(t, ui.NavigateTo(context.Background(), "view2"))

	items := ui.RenderContext().Items
	assert.False(t, items[0].Active)
	assert.False(t, items[1].Active)
	assert.True(t, items[2].Active)
}

func TestNavigationIsRecorded(t *testing.T) {
	journal := &JournalMock{}
	ui := menuapp.NewUI("session-1", journal, metrics.New())

	require.NoError(t, ui.NavigateTo(context.Background(), "view1"))
	require.NoError(t, ui.NavigateTo(context.Background(), ""))

	require.Len(t, journal.Events, 2)
	assert.Equal(t, "view1", journal.Events[0].Detail)
	assert.Equal(t, "", journal.Events[1].Detail)
	assert.Equal(t, model.AppMenu, journal.Events[1].App)
	assert.Equal(t, model.EventNavigate, journal.Events[1].Kind)
	assert.Equal(t, "session-1", journal.Events[1].Session)
}

func TestRoutesAreClosed(t *testing.T) {
	routes := menuapp.Routes()

	assert.Len(t, routes, 3)
	assert.IsType(t, &menuapp.DefaultView{}, routes[model.RouteDefault]())
	assert.IsType(t, &menuapp.View1{}, routes[model.RouteView1]())
	assert.IsType(t, &menuapp.View2{}, routes[model.RouteView2]())
}
