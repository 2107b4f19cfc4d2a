package uisnippets

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dasdy/uisnippets/db"
	"github.com/dasdy/uisnippets/metrics"
	"github.com/dasdy/uisnippets/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type serverBuilder func(cfg web.ServerConfig) *http.ServeMux

func serve(build serverBuilder) error {
	slog.Info("Starting", "config", viper.ConfigFileUsed(), "port", port, "dev", dev, "journal", journalPath)

	ttl, err := time.ParseDuration(sessionTTL)
	if err != nil {
		return fmt.Errorf("bad session ttl %q: %w", sessionTTL, err)
	}

	journal, err := db.Open(journalPath)
	if err != nil {
		return fmt.Errorf("could not open journal %s: %w", journalPath, err)
	}
	defer journal.Close()

	handler := build(web.ServerConfig{
		Dev:        dev,
		Journal:    journal,
		Metrics:    metrics.New(),
		SessionTTL: ttl,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.StartServer(ctx, port, handler)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	cmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	cmd.Flags().StringVar(&journalPath,
		"journal",
		"",
		"Path to a sqlite file recording clicks and navigations; empty disables recording")

	cmd.Flags().StringVar(&sessionTTL,
		"session-ttl",
		"30m",
		"Idle time after which a UI session is dropped; 0 keeps sessions forever")
}

// gridCmd represents the grid command.
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Serve the grid with a clickable icon column",
	Long:  `Serve a grid of the numbers 1 to 20. Clicking the icon next to a number shows a notification naming it.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve(web.BuildGridServer)
	},
}

// menuCmd represents the menu command.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Serve the side menu navigating between views",
	Long:  `Serve a side menu with two links. Each link swaps the content next to the menu; / shows the default view.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve(web.BuildMenuServer)
	},
}

func init() {
	addServeFlags(gridCmd)
	addServeFlags(menuCmd)

	rootCmd.AddCommand(gridCmd, menuCmd)
}
