package uisnippets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dasdy/uisnippets/db"
	"github.com/dasdy/uisnippets/model"
	"github.com/spf13/cobra"
)

var journalLimit int

func printJournal(w io.Writer, journal db.Journal, limit int) error {
	for _, app := range []string{model.AppGrid, model.AppMenu} {
		events, err := journal.Recent(app, limit)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%s: %d recent events\n", app, len(events)); err != nil {
			return fmt.Errorf("could not print journal: %w", err)
		}

		for _, e := range events {
			_, err := fmt.Fprintf(w, "  %s  %-10s  %-12s  %q\n", e.At.Local().Format(time.DateTime), e.Kind, e.Session[:min(8, len(e.Session))], e.Detail)
			if err != nil {
				return fmt.Errorf("could not print journal: %w", err)
			}
		}
	}

	return nil
}

// journalCmd represents the journal command.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print recently recorded interactions",
	Long:  `Read the sqlite journal written by the grid and menu commands and print the latest events of each demo.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if journalPath == "" {
			return errors.New("no journal configured, pass --journal")
		}

		if _, err := os.Stat(journalPath); err != nil {
			return fmt.Errorf("could not open journal: %w", err)
		}

		journal, err := db.ConnectDB(journalPath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", journalPath, err)
		}
		defer journal.Close()

		return printJournal(cmd.OutOrStdout(), journal, journalLimit)
	},
}

func init() {
	journalCmd.Flags().StringVar(&journalPath,
		"journal",
		"",
		"Path to the sqlite journal")

	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 10, "Number of events to show per demo")

	rootCmd.AddCommand(journalCmd)
}
