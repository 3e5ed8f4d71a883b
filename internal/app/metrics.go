package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry     *prometheus.Registry
	submissions  *prometheus.CounterVec
	kits         *prometheus.CounterVec
	emails       *prometheus.CounterVec
	imageQueries *prometheus.CounterVec
	kitDuration  prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "designkit",
			Name:      "submissions_total",
			Help:      "Quiz submissions by outcome.",
		}, []string{"result"}),
		kits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "designkit",
			Name:      "kits_generated_total",
			Help:      "Design kit generations by outcome.",
		}, []string{"result"}),
		emails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "designkit",
			Name:      "emails_total",
			Help:      "Results emails by outcome.",
		}, []string{"result"}),
		imageQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "designkit",
			Name:      "image_queries_total",
			Help:      "Mood board image searches by outcome.",
		}, []string{"result"}),
		kitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "designkit",
			Name:      "kit_generation_seconds",
			Help:      "Time spent generating a design kit.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(m.submissions, m.kits, m.emails, m.imageQueries, m.kitDuration)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
