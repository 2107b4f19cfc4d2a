package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dasdy/uisnippets/gridapp"
	"github.com/dasdy/uisnippets/session"
	"github.com/dasdy/uisnippets/widget"
	cs "github.com/dasdy/uisnippets/web/components"
)

const GridTitle = "Grid with icon column"

// GridHandler serves the grid demo. Every session gets its own gridapp.UI.
type GridHandler struct {
	Sessions *session.Manager[*gridapp.UI]
}

func (h *GridHandler) PageHandle(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Access(w, r, func(ctx context.Context, ui *gridapp.UI) {
		slog.DebugContext(ctx, "Handling grid page request")

		renderContext := ui.RenderContext()
		renderOrFail(ctx, cs.Page(GridTitle, cs.Grid(&renderContext)), w)
	})
}

type gridClick func(ui *gridapp.UI, ctx context.Context, row, column int) error

func (h *GridHandler) handleClick(w http.ResponseWriter, r *http.Request, click gridClick) {
	row, err := formInt(r, "row")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	column, err := formInt(r, "column")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	h.Sessions.Access(w, r, func(ctx context.Context, ui *gridapp.UI) {
		err := click(ui, ctx, row, column)

		switch {
		case errors.Is(err, widget.ErrNoSuchCell):
			slog.WarnContext(ctx, "Click on a missing cell", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
		case err != nil:
			slog.ErrorContext(ctx, "Click failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		default:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		}
	})
}

// CellClickHandle handles a click on a cell outside of the icon.
func (h *GridHandler) CellClickHandle(w http.ResponseWriter, r *http.Request) {
	h.handleClick(w, r, (*gridapp.UI).ClickCell)
}

// IconClickHandle handles a click on the icon image.
func (h *GridHandler) IconClickHandle(w http.ResponseWriter, r *http.Request) {
	h.handleClick(w, r, (*gridapp.UI).ClickIcon)
}

// ResetHandle drops the grid state of the session.
func (h *GridHandler) ResetHandle(w http.ResponseWriter, r *http.Request) {
	startOver(h.Sessions, w, r)
}
