package widget

import (
	"github.com/a-h/templ"
	"github.com/dasdy/uisnippets/model"
)

type ViewChangeEvent struct {
	Old        View
	New        View
	Route      model.Route
	Parameters string
}

// View is a unit of content that can be mounted into a ViewContainer.
type View interface {
	Name() string
	Enter(event ViewChangeEvent)
	Component() templ.Component
}

// ViewContainer holds at most one view. Setting new content discards the old one.
type ViewContainer struct {
	current View
}

func (c *ViewContainer) SetContent(v View) {
	c.current = v
}

func (c *ViewContainer) Content() View {
	return c.current
}

func (c *ViewContainer) Count() int {
	if c.current == nil {
		return 0
	}

	return 1
}
