// Package gridapp is the grid demo: the numbers 1..20 next to a clickable icon.
package gridapp

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dasdy/uisnippets/db"
	"github.com/dasdy/uisnippets/metrics"
	"github.com/dasdy/uisnippets/model"
	"github.com/dasdy/uisnippets/widget"
	cs "github.com/dasdy/uisnippets/web/components"
)

const IconAsset = "img/icon.svg"

// UI is the state of the grid demo owned by one session.
type UI struct {
	session    string
	journal    db.Journal
	metrics    *metrics.Metrics
	grid       *widget.Grid[model.Row]
	iconColumn *widget.Column[model.Row]
	notifier   widget.Notifier
}

func NewUI(session string, journal db.Journal, m *metrics.Metrics) *UI {
	ui := &UI{
		session: session,
		journal: journal,
		metrics: m,
		grid:    widget.NewGrid[model.Row](),
	}

	ui.grid.AddColumn(func(r model.Row) string { return strconv.Itoa(r.Number) }).SetCaption("Number")
	ui.addIconColumn()
	ui.grid.SetItems(model.GridRows())

	return ui
}

func (ui *UI) addIconColumn() {
	ui.iconColumn = ui.grid.AddImageColumn(func(model.Row) string { return IconAsset })

	ui.iconColumn.AddRendererClickListener(func(e widget.RendererClickEvent[model.Row]) {
		ui.iconClicked(e.Item)
	})

	ui.grid.AddItemClickListener(func(e widget.ItemClickEvent[model.Row]) {
		if e.Column.ID() == ui.iconColumn.ID() {
			ui.iconClicked(e.Item)
		}
	})
}

func (ui *UI) iconClicked(row model.Row) {
	ui.notifier.Show(fmt.Sprintf("%d clicked!", row.Number))

	if ui.metrics != nil {
		ui.metrics.IconClicked()
	}

	err := ui.journal.Record(&model.Event{
		Session: ui.session,
		App:     model.AppGrid,
		Kind:    model.EventIconClick,
		Detail:  strconv.Itoa(row.Number),
	})
	if err != nil {
		slog.Error("Failed to record icon click", "error", err)
	}
}

func (ui *UI) Grid() *widget.Grid[model.Row] {
	return ui.grid
}

func (ui *UI) IconColumn() *widget.Column[model.Row] {
	return ui.iconColumn
}

// ClickCell is a click anywhere in a cell that is not the icon itself.
func (ui *UI) ClickCell(ctx context.Context, rowIndex, columnID int) error {
	slog.DebugContext(ctx, "Cell click", "row", rowIndex, "column", columnID)

	if err := ui.grid.ClickCell(rowIndex, columnID); err != nil {
		return fmt.Errorf("could not click cell: %w", err)
	}

	return nil
}

// ClickIcon is a click on the icon image itself.
func (ui *UI) ClickIcon(ctx context.Context, rowIndex, columnID int) error {
	slog.DebugContext(ctx, "Icon click", "row", rowIndex, "column", columnID)

	if err := ui.grid.ClickRenderer(rowIndex, columnID); err != nil {
		return fmt.Errorf("could not click icon: %w", err)
	}

	return nil
}

// RenderContext snapshots the grid for rendering and consumes pending notifications.
func (ui *UI) RenderContext() cs.GridRenderContext {
	columns := ui.grid.Columns()

	rc := cs.GridRenderContext{
		Columns:       make([]cs.GridColumn, 0, len(columns)),
		Rows:          make([]cs.GridRow, 0, len(ui.grid.Items())),
		Notifications: ui.notifier.Drain(),
	}

	for _, col := range columns {
		rc.Columns = append(rc.Columns, cs.GridColumn{
			ID:      col.ID(),
			Caption: col.Caption(),
			Image:   col.Renderer() == widget.RendererImage,
		})
	}

	for i, item := range ui.grid.Items() {
		row := cs.GridRow{Index: i, Cells: make([]cs.Cell, 0, len(columns))}
		for _, col := range columns {
			row.Cells = append(row.Cells, cs.Cell{
				ColumnID: col.ID(),
				Value:    col.Value(item),
				Image:    col.Renderer() == widget.RendererImage,
			})
		}

		rc.Rows = append(rc.Rows, row)
	}

	return rc
}
