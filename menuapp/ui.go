// Package menuapp is the side menu demo: a fixed menu that swaps placeholder views.
package menuapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dasdy/uisnippets/db"
	"github.com/dasdy/uisnippets/metrics"
	"github.com/dasdy/uisnippets/model"
	"github.com/dasdy/uisnippets/nav"
	"github.com/dasdy/uisnippets/widget"
	cs "github.com/dasdy/uisnippets/web/components"
)

// UI is the state of the side menu demo owned by one session.
type UI struct {
	session   string
	journal   db.Journal
	metrics   *metrics.Metrics
	menu      []model.MenuEntry
	location  string
	fallback  bool
	container *widget.ViewContainer
	navigator *nav.Navigator
	notifier  widget.Notifier
}

func NewUI(session string, journal db.Journal, m *metrics.Metrics) *UI {
	ui := &UI{
		session:   session,
		journal:   journal,
		metrics:   m,
		menu:      model.MenuEntries(),
		container: &widget.ViewContainer{},
	}

	ui.navigator = nav.NewNavigator(ui.container)
	for route, provider := range Routes() {
		ui.navigator.AddView(route, provider)
	}

	ui.navigator.AddViewChangeListener(ui.viewChanged)

	return ui
}

func (ui *UI) viewChanged(e widget.ViewChangeEvent) {
	if ui.metrics != nil {
		ui.metrics.Navigated(e.Route)
	}

	err := ui.journal.Record(&model.Event{
		Session: ui.session,
		App:     model.AppMenu,
		Kind:    model.EventNavigate,
		Detail:  string(e.Route),
	})
	if err != nil {
		slog.Error("Failed to record navigation", "error", err)
	}
}

// NavigateTo shows the view of state. Unknown routes show the default view with
// a warning, and the error wraps nav.ErrUnknownRoute.
func (ui *UI) NavigateTo(ctx context.Context, state string) error {
	state = strings.Trim(state, "/")
	err := ui.navigator.NavigateTo(state)

	switch {
	case err == nil:
		slog.DebugContext(ctx, "Navigated", "route", ui.navigator.State().String())
		ui.location = state
		ui.fallback = false

		return nil
	case errors.Is(err, nav.ErrUnknownRoute):
		slog.WarnContext(ctx, "Unknown route requested", "state", state)
		ui.notifier.ShowKind(fmt.Sprintf("Nothing at /%s, showing the default view", state), model.NotificationWarning)
		ui.location = state
		ui.fallback = true

		return err
	default:
		return fmt.Errorf("could not navigate: %w", err)
	}
}

// Location is the last requested navigation state, parameters included. It is
// kept even when it named no view.
func (ui *UI) Location() string {
	return ui.location
}

// Address is the state of the view on screen: the location, or the default
// route when the location fell back.
func (ui *UI) Address() string {
	if ui.fallback {
		return string(model.RouteDefault)
	}

	return ui.location
}

// Shows reports whether navigating to state would bring up the view already on
// screen, either because state was the last request or because it is its address.
func (ui *UI) Shows(state string) bool {
	state = strings.Trim(state, "/")

	return ui.Mounted() && (state == ui.location || state == ui.Address())
}

// Mounted reports whether any view has been shown yet.
func (ui *UI) Mounted() bool {
	return ui.container.Count() > 0
}

func (ui *UI) State() model.Route {
	return ui.navigator.State()
}

func (ui *UI) Container() *widget.ViewContainer {
	return ui.container
}

func (ui *UI) Menu() []model.MenuEntry {
	return ui.menu
}

func (ui *UI) RenderContext() cs.MenuRenderContext {
	rc := cs.MenuRenderContext{Items: make([]cs.MenuItem, 0, len(ui.menu))}

	for _, entry := range ui.menu {
		rc.Items = append(rc.Items, cs.MenuItem{
			Label:  entry.Label,
			Route:  entry.Target,
			Title:  entry.Title,
			Active: !entry.Title && entry.Target == ui.navigator.State() && ui.container.Count() > 0,
		})
	}

	if view := ui.container.Content(); view != nil {
		rc.Content = view.Component()
	}

	rc.Notifications = ui.notifier.Drain()

	return rc
}
