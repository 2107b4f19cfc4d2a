package components

import (
	"github.com/a-h/templ"
	"github.com/dasdy/uisnippets/model"
)

// AssetsPrefix is where image paths of image columns are resolved against.
const AssetsPrefix = "/assets/"

type GridColumn struct {
	ID      int
	Caption string
	Image   bool
}

type Cell struct {
	ColumnID int
	Value    string
	Image    bool
}

type GridRow struct {
	Index int
	Cells []Cell
}

type GridRenderContext struct {
	Columns       []GridColumn
	Rows          []GridRow
	Notifications []model.Notification
}

type MenuItem struct {
	Label  string
	Route  model.Route
	Title  bool
	Active bool
}

type MenuRenderContext struct {
	Items         []MenuItem
	Content       templ.Component
	Notifications []model.Notification
}
