package metrics

import (
	"net/http"

	"github.com/dasdy/uisnippets/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "uisnippets"

// Metrics holds the collectors of one server. Each server gets its own registry so
// that tests can build several servers in one process.
type Metrics struct {
	registry    *prometheus.Registry
	iconClicks  prometheus.Counter
	navigations *prometheus.CounterVec
	sessions    *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		iconClicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "icon_clicks_total",
			Help:      "Number of icon column clicks in the grid demo.",
		}),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Number of navigations in the side menu demo, by route.",
		}, []string{"route"}),
		sessions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Number of live UI sessions.",
		}, []string{"app"}),
	}

	m.registry.MustRegister(m.iconClicks, m.navigations, m.sessions)

	return m
}

func (m *Metrics) IconClicked() {
	m.iconClicks.Inc()
}

func (m *Metrics) Navigated(route model.Route) {
	m.navigations.WithLabelValues(route.String()).Inc()
}

func (m *Metrics) SetSessions(app string, n int) {
	m.sessions.WithLabelValues(app).Set(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
