package routes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zmzlois/readingreact/model"
	cs "github.com/zmzlois/readingreact/web/components"
)

// Metrics counts rendered pages. A nil *Metrics records nothing.
type Metrics struct {
	renders *prometheus.CounterVec
	guides  prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "readingreact",
			Name:      "page_renders_total",
			Help:      "Rendered pages by page type and outcome.",
		}, []string{"page", "outcome"}),
		guides: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "readingreact",
			Name:      "grid_guides",
			Help:      "Guides drawn per rendered grid.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}),
	}

	reg.MustRegister(m.renders, m.guides)

	return m
}

func pageLabel(pageType cs.PageType) string {
	switch pageType {
	case cs.PageTypeIndex:
		return "index"
	case cs.PageTypeGrid:
		return "grid"
	case cs.PageTypeGuides:
		return "guides"
	default:
		return "unknown"
	}
}

func (m *Metrics) observeRender(pageType cs.PageType, ok bool) {
	if m == nil {
		return
	}

	outcome := "ok"
	if !ok {
		outcome = "error"
	}

	m.renders.WithLabelValues(pageLabel(pageType), outcome).Inc()
}

func (m *Metrics) observeGuides(spec model.GridSpec) {
	if m == nil {
		return
	}

	m.guides.Observe(float64(spec.Rows * spec.Columns))
}
