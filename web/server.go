package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/uisnippets/assets"
	"github.com/dasdy/uisnippets/db"
	"github.com/dasdy/uisnippets/gridapp"
	"github.com/dasdy/uisnippets/menuapp"
	"github.com/dasdy/uisnippets/metrics"
	"github.com/dasdy/uisnippets/model"
	"github.com/dasdy/uisnippets/session"
	"github.com/dasdy/uisnippets/web/routes"
)

const (
	GridCookie = "uisnippets-grid"
	MenuCookie = "uisnippets-menu"

	shutdownTimeout = 5 * time.Second
)

// ServerConfig holds what both demo servers are built from.
type ServerConfig struct {
	Dev        bool
	Journal    db.Journal
	Metrics    *metrics.Metrics
	SessionTTL time.Duration
}

func (c *ServerConfig) defaults() {
	if c.Journal == nil {
		c.Journal = db.NopJournal{}
	}

	if c.Metrics == nil {
		c.Metrics = metrics.New()
	}
}

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func assetsHandler(dev bool, files fs.FS) http.Handler {
	return disableCacheInDevMode(dev,
		http.StripPrefix("/assets",
			http.FileServer(http.FS(files))))
}

func newMux(cfg *ServerConfig) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /assets/", assetsHandler(cfg.Dev, assets.FS()))
	mux.Handle("GET /metrics", cfg.Metrics.Handler())

	return mux
}

// BuildGridServer wires the grid demo.
func BuildGridServer(cfg ServerConfig) *http.ServeMux {
	cfg.defaults()

	sessions := session.NewManager[*gridapp.UI](GridCookie,
		func(id string) *gridapp.UI { return gridapp.NewUI(id, cfg.Journal, cfg.Metrics) },
		session.WithTTL[*gridapp.UI](cfg.SessionTTL),
		session.WithSizeListener[*gridapp.UI](func(n int) { cfg.Metrics.SetSessions(model.AppGrid, n) }),
	)
	handler := routes.GridHandler{Sessions: sessions}

	mux := newMux(&cfg)
	mux.HandleFunc("POST /grid/click", handler.CellClickHandle)
	mux.HandleFunc("POST /grid/icon", handler.IconClickHandle)
	mux.HandleFunc("POST /reset", handler.ResetHandle)
	mux.HandleFunc("GET /{$}", handler.PageHandle)

	return mux
}

// BuildMenuServer wires the side menu demo. Every GET path other than assets and
// metrics is a navigation state.
func BuildMenuServer(cfg ServerConfig) *http.ServeMux {
	cfg.defaults()

	sessions := session.NewManager[*menuapp.UI](MenuCookie,
		func(id string) *menuapp.UI { return menuapp.NewUI(id, cfg.Journal, cfg.Metrics) },
		session.WithTTL[*menuapp.UI](cfg.SessionTTL),
		session.WithSizeListener[*menuapp.UI](func(n int) { cfg.Metrics.SetSessions(model.AppMenu, n) }),
	)
	handler := routes.MenuHandler{Sessions: sessions}

	mux := newMux(&cfg)
	mux.HandleFunc("POST /navigate", handler.NavigateHandle)
	mux.HandleFunc("POST /reset", handler.ResetHandle)
	mux.HandleFunc("GET /favicon.ico", http.NotFound)
	mux.HandleFunc("GET /", handler.PageHandle)

	return mux
}

// StartServer serves handler on port until ctx is cancelled.
func StartServer(ctx context.Context, port int, handler http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("Running interface", "port", port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("could not run server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}
