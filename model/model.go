package model

import (
	"strings"
	"time"
)

const (
	FirstRowNumber = 1
	LastRowNumber  = 20
)

// Row is a single item of the icon grid.
type Row struct {
	Number int
}

// RowsInRange returns rows numbered from..to, both inclusive, in ascending order.
func RowsInRange(from, to int) []Row {
	if to < from {
		return []Row{}
	}

	rows := make([]Row, 0, to-from+1)
	for n := from; n <= to; n++ {
		rows = append(rows, Row{Number: n})
	}

	return rows
}

func GridRows() []Row {
	return RowsInRange(FirstRowNumber, LastRowNumber)
}

// Route identifies a navigable view. The empty route is the default view.
type Route string

const (
	RouteDefault Route = ""
	RouteView1   Route = "view1"
	RouteView2   Route = "view2"
)

// Path returns the URL path the route is addressable at.
func (r Route) Path() string {
	return "/" + string(r)
}

func (r Route) String() string {
	if r == RouteDefault {
		return "<default>"
	}

	return string(r)
}

func RouteFromPath(path string) Route {
	return Route(strings.Trim(path, "/"))
}

type MenuEntry struct {
	Label  string
	Target Route
	Title  bool
}

// MenuEntries returns the side menu in display order: title first, then the links.
func MenuEntries() []MenuEntry {
	return []MenuEntry{
		{Label: "Menu", Title: true},
		{Label: "View 1", Target: RouteView1},
		{Label: "View 2", Target: RouteView2},
	}
}

type NotificationKind int

const (
	NotificationHumanized NotificationKind = iota
	NotificationWarning
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationWarning:
		return "warning"
	case NotificationHumanized:
		return "humanized"
	default:
		return "humanized"
	}
}

type Notification struct {
	Text string
	Kind NotificationKind
}

const (
	AppGrid = "grid"
	AppMenu = "menu"

	EventIconClick = "icon_click"
	EventNavigate  = "navigate"
)

// Event is one recorded user interaction.
type Event struct {
	ID      string
	Session string
	App     string
	Kind    string
	Detail  string
	At      time.Time
}
