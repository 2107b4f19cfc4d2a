package menuapp

import (
	"github.com/a-h/templ"
	"github.com/dasdy/uisnippets/model"
	"github.com/dasdy/uisnippets/nav"
	"github.com/dasdy/uisnippets/widget"
	cs "github.com/dasdy/uisnippets/web/components"
)

type placeholderView struct {
	id      string
	caption string
	params  string
}

func (v *placeholderView) Name() string {
	return v.id
}

func (v *placeholderView) Enter(event widget.ViewChangeEvent) {
	v.params = event.Parameters
}

func (v *placeholderView) Component() templ.Component {
	caption := v.caption
	if v.params != "" {
		caption += " (" + v.params + ")"
	}

	return cs.PlaceholderView(v.id, caption)
}

type DefaultView struct{ placeholderView }

type View1 struct{ placeholderView }

type View2 struct{ placeholderView }

func NewDefaultView() widget.View {
	return &DefaultView{placeholderView{id: "default", caption: "Default view"}}
}

func NewView1() widget.View {
	return &View1{placeholderView{id: "view1", caption: "View 1"}}
}

func NewView2() widget.View {
	return &View2{placeholderView{id: "view2", caption: "View 2"}}
}

// Routes is the closed set of destinations of the side menu.
func Routes() map[model.Route]nav.ViewProvider {
	return map[model.Route]nav.ViewProvider{
		model.RouteDefault: NewDefaultView,
		model.RouteView1:   NewView1,
		model.RouteView2:   NewView2,
	}
}
