package nav

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dasdy/uisnippets/model"
	"github.com/dasdy/uisnippets/widget"
)

var (
	ErrUnknownRoute  = errors.New("unknown route")
	ErrNoDefaultView = errors.New("no view registered for the default route")
)

// ViewProvider creates a fresh view instance for a route.
type ViewProvider func() widget.View

// Navigator swaps the content of a container according to a route table.
type Navigator struct {
	container *widget.ViewContainer
	table     map[model.Route]ViewProvider
	state     model.Route
	listeners []func(widget.ViewChangeEvent)
}

func NewNavigator(container *widget.ViewContainer) *Navigator {
	return &Navigator{
		container: container,
		table:     make(map[model.Route]ViewProvider),
	}
}

// AddView registers provider for route, replacing any earlier registration.
func (n *Navigator) AddView(route model.Route, provider ViewProvider) {
	n.table[route] = provider
}

func (n *Navigator) AddViewChangeListener(listener func(widget.ViewChangeEvent)) {
	n.listeners = append(n.listeners, listener)
}

func (n *Navigator) State() model.Route {
	return n.state
}

// resolve finds the longest registered route that the state names, either exactly
// or followed by "/parameters".
func (n *Navigator) resolve(state string) (model.Route, string, bool) {
	var (
		best   model.Route
		params string
		found  bool
	)

	for route := range n.table {
		r := string(route)

		switch {
		case state == r:
			if !found || len(r) > len(best) {
				best, params, found = route, "", true
			}
		case r != "" && strings.HasPrefix(state, r+"/"):
			if !found || len(r) > len(best) {
				best, params, found = route, state[len(r)+1:], true
			}
		}
	}

	return best, params, found
}

// NavigateTo mounts the view registered for state. State is a route optionally
// followed by "/parameters". Unknown routes fall back to the default view, and
// the returned error wraps ErrUnknownRoute.
func (n *Navigator) NavigateTo(state string) error {
	state = strings.Trim(state, "/")

	route, params, ok := n.resolve(state)
	if !ok {
		provider, hasDefault := n.table[model.RouteDefault]
		if !hasDefault {
			return fmt.Errorf("navigating to %q: %w", state, ErrNoDefaultView)
		}

		slog.Debug("Unknown route, showing default view", "state", state)
		n.mount(model.RouteDefault, "", provider)

		return fmt.Errorf("navigating to %q: %w", state, ErrUnknownRoute)
	}

	n.mount(route, params, n.table[route])

	return nil
}

func (n *Navigator) mount(route model.Route, params string, provider ViewProvider) {
	view := provider()
	event := widget.ViewChangeEvent{
		Old:        n.container.Content(),
		New:        view,
		Route:      route,
		Parameters: params,
	}

	view.Enter(event)
	n.container.SetContent(view)
	n.state = route

	slog.Debug("Navigated", "route", route.String(), "view", view.Name())

	for _, l := range n.listeners {
		l(event)
	}
}
