package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dasdy/uisnippets/menuapp"
	"github.com/dasdy/uisnippets/nav"
	"github.com/dasdy/uisnippets/session"
	cs "github.com/dasdy/uisnippets/web/components"
)

const MenuTitle = "Side menu"

// MenuHandler serves the side menu demo. Every session gets its own menuapp.UI.
type MenuHandler struct {
	Sessions *session.Manager[*menuapp.UI]
}

// navigate moves ui to state and reports whether a real error (not a fallback) happened.
func navigate(ctx context.Context, ui *menuapp.UI, state string) error {
	err := ui.NavigateTo(ctx, state)
	if err != nil && !errors.Is(err, nav.ErrUnknownRoute) {
		return err
	}

	return nil
}

// PageHandle renders the route designated by the request path. Paths that name
// no registered route show the default view.
func (h *MenuHandler) PageHandle(w http.ResponseWriter, r *http.Request) {
	state := strings.Trim(r.URL.Path, "/")

	h.Sessions.Access(w, r, func(ctx context.Context, ui *menuapp.UI) {
		slog.DebugContext(ctx, "Handling menu page request", "state", state)

		if !ui.Shows(state) {
			if err := navigate(ctx, ui, state); err != nil {
				slog.ErrorContext(ctx, "Navigation failed", "error", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)

				return
			}
		}

		renderContext := ui.RenderContext()
		renderOrFail(ctx, cs.Page(MenuTitle, cs.SideMenu(&renderContext)), w)
	})
}

// NavigateHandle handles a menu link click and redirects to the address of the
// view that ended up shown.
func (h *MenuHandler) NavigateHandle(w http.ResponseWriter, r *http.Request) {
	state := r.PostFormValue("route")

	h.Sessions.Access(w, r, func(ctx context.Context, ui *menuapp.UI) {
		if err := navigate(ctx, ui, state); err != nil {
			slog.ErrorContext(ctx, "Navigation failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		http.Redirect(w, r, "/"+ui.Address(), http.StatusSeeOther)
	})
}

// ResetHandle drops the navigation state of the session.
func (h *MenuHandler) ResetHandle(w http.ResponseWriter, r *http.Request) {
	startOver(h.Sessions, w, r)
}
