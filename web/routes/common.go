package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dasdy/uisnippets/session"
)

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(ctx context.Context, component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// renderOrFail renders component, replying with 500 when rendering fails.
func renderOrFail(ctx context.Context, component templ.Component, w http.ResponseWriter) {
	if err := SafeRenderTemplate(ctx, component, w); err != nil {
		slog.ErrorContext(ctx, "Could not render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// startOver ends the session of r and sends the browser back to the first page,
// where a fresh UI instance is created.
func startOver[T any](sessions *session.Manager[T], w http.ResponseWriter, r *http.Request) {
	sessions.End(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// formInt reads an integer form field.
func formInt(r *http.Request, name string) (int, error) {
	raw := r.PostFormValue(name)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", name, raw, err)
	}

	return value, nil
}
