package widget

import "github.com/dasdy/uisnippets/model"

// Notifier queues transient notifications until the next render picks them up.
type Notifier struct {
	pending []model.Notification
}

func (n *Notifier) Show(text string) {
	n.ShowKind(text, model.NotificationHumanized)
}

func (n *Notifier) ShowKind(text string, kind model.NotificationKind) {
	n.pending = append(n.pending, model.Notification{Text: text, Kind: kind})
}

// Drain returns pending notifications and forgets them.
func (n *Notifier) Drain() []model.Notification {
	out := n.pending
	n.pending = nil

	return out
}

func (n *Notifier) Pending() int {
	return len(n.pending)
}
