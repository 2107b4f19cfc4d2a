package widget

import (
	"errors"
	"fmt"
	"log/slog"
)

var ErrNoSuchCell = errors.New("no such cell")

type RendererKind int

const (
	RendererText RendererKind = iota
	RendererImage
)

// ItemClickEvent is fired when a cell of the grid is clicked. Column is the column
// the click landed in.
type ItemClickEvent[T any] struct {
	Item     T
	RowIndex int
	Column   *Column[T]
}

// RendererClickEvent is fired when the clickable part of a cell renderer
// (e.g. the image of an image column) is activated.
type RendererClickEvent[T any] struct {
	Item     T
	RowIndex int
	Column   *Column[T]
}

type Column[T any] struct {
	id        int
	caption   string
	value     func(T) string
	renderer  RendererKind
	listeners []func(RendererClickEvent[T])
}

// ID is unique within the grid that created the column.
func (c *Column[T]) ID() int {
	return c.id
}

func (c *Column[T]) SetCaption(caption string) *Column[T] {
	c.caption = caption

	return c
}

func (c *Column[T]) Caption() string {
	return c.caption
}

func (c *Column[T]) Renderer() RendererKind {
	return c.renderer
}

// Value returns the presentation value of item for this column: text for text
// columns, an asset path for image columns.
func (c *Column[T]) Value(item T) string {
	return c.value(item)
}

func (c *Column[T]) AddRendererClickListener(listener func(RendererClickEvent[T])) {
	c.listeners = append(c.listeners, listener)
}

// Grid is a tabular widget over a fixed list of items.
type Grid[T any] struct {
	columns   []*Column[T]
	items     []T
	listeners []func(ItemClickEvent[T])
	nextID    int
}

func NewGrid[T any]() *Grid[T] {
	return &Grid[T]{}
}

func (g *Grid[T]) addColumn(value func(T) string, renderer RendererKind) *Column[T] {
	g.nextID++
	col := &Column[T]{id: g.nextID, value: value, renderer: renderer}
	g.columns = append(g.columns, col)

	return col
}

func (g *Grid[T]) AddColumn(value func(T) string) *Column[T] {
	return g.addColumn(value, RendererText)
}

func (g *Grid[T]) AddImageColumn(value func(T) string) *Column[T] {
	return g.addColumn(value, RendererImage)
}

func (g *Grid[T]) Columns() []*Column[T] {
	return g.columns
}

// Column looks up a column by its ID.
func (g *Grid[T]) Column(id int) (*Column[T], error) {
	for _, col := range g.columns {
		if col.id == id {
			return col, nil
		}
	}

	return nil, fmt.Errorf("column %d: %w", id, ErrNoSuchCell)
}

func (g *Grid[T]) SetItems(items []T) {
	g.items = make([]T, len(items))
	copy(g.items, items)
}

func (g *Grid[T]) Items() []T {
	return g.items
}

func (g *Grid[T]) AddItemClickListener(listener func(ItemClickEvent[T])) {
	g.listeners = append(g.listeners, listener)
}

func (g *Grid[T]) cell(rowIndex, columnID int) (T, *Column[T], error) {
	var zero T

	if rowIndex < 0 || rowIndex >= len(g.items) {
		return zero, nil, fmt.Errorf("row %d: %w", rowIndex, ErrNoSuchCell)
	}

	col, err := g.Column(columnID)
	if err != nil {
		return zero, nil, err
	}

	return g.items[rowIndex], col, nil
}

// ClickCell handles a click on a cell outside of any renderer affordance. Item
// click listeners get notified with the clicked column.
func (g *Grid[T]) ClickCell(rowIndex, columnID int) error {
	item, col, err := g.cell(rowIndex, columnID)
	if err != nil {
		return err
	}

	slog.Debug("Grid cell clicked", "row", rowIndex, "column", columnID)

	event := ItemClickEvent[T]{Item: item, RowIndex: rowIndex, Column: col}
	for _, l := range g.listeners {
		l(event)
	}

	return nil
}

// ClickRenderer handles activation of the renderer of a cell, which only image
// columns have.
func (g *Grid[T]) ClickRenderer(rowIndex, columnID int) error {
	item, col, err := g.cell(rowIndex, columnID)
	if err != nil {
		return err
	}

	if col.renderer != RendererImage {
		return fmt.Errorf("column %d has no clickable renderer: %w", columnID, ErrNoSuchCell)
	}

	slog.Debug("Grid renderer clicked", "row", rowIndex, "column", columnID)

	event := RendererClickEvent[T]{Item: item, RowIndex: rowIndex, Column: col}
	for _, l := range col.listeners {
		l(event)
	}

	return nil
}
