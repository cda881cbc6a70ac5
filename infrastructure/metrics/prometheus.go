// Package metrics provides Prometheus metrics for notification delivery.
package metrics

import (
	"net/http"

	"seyren-stride/domain/interfaces"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seyren_notifier"

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Dispatch metrics
	dispatchesTotal  *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec

	// Per-conversation post metrics
	postsTotal *prometheus.CounterVec

	// Credential metrics
	tokenFailures *prometheus.CounterVec

	// Routing metrics
	routedTotal *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		dispatchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatches_total",
				Help:      "Total number of notification dispatches by outcome",
			},
			[]string{"channel", "outcome"},
		),
		dispatchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Duration of notification dispatches",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"channel"},
		),
		postsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "conversation_posts_total",
				Help:      "Total number of conversation posts by result",
			},
			[]string{"channel", "result"},
		),
		tokenFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_failures_total",
				Help:      "Total number of failed access token exchanges",
			},
			[]string{"channel"},
		),
		routedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "routed_notifications_total",
				Help:      "Total number of notifications routed by subscription type and result",
			},
			[]string{"subscription_type", "result"},
		),
	}
}

// ObserveDispatch records one finished dispatch.
func (m *Metrics) ObserveDispatch(channel, outcome string, seconds float64) {
	m.dispatchesTotal.WithLabelValues(channel, outcome).Inc()
	m.dispatchDuration.WithLabelValues(channel).Observe(seconds)
}

// IncrementPosts records one conversation post.
func (m *Metrics) IncrementPosts(channel, result string) {
	m.postsTotal.WithLabelValues(channel, result).Inc()
}

// IncrementTokenFailures records a failed token exchange.
func (m *Metrics) IncrementTokenFailures(channel string) {
	m.tokenFailures.WithLabelValues(channel).Inc()
}

// IncrementRouted records a routing decision.
func (m *Metrics) IncrementRouted(subscriptionType, result string) {
	m.routedTotal.WithLabelValues(subscriptionType, result).Inc()
}

var _ interfaces.DispatchMetrics = (*Metrics)(nil)

// Exporter owns a registry and serves it over HTTP.
type Exporter struct {
	metrics  *Metrics
	registry *prometheus.Registry
	logger   interfaces.Logger
}

// NewExporter creates a new metrics exporter with process and Go collectors.
func NewExporter(logger interfaces.Logger) *Exporter {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Exporter{
		metrics:  NewMetrics(registry),
		registry: registry,
		logger:   logger,
	}
}

// Metrics returns the notification metrics backed by the exporter's registry.
func (e *Exporter) Metrics() *Metrics {
	return e.metrics
}

// Handler serves the registry in the Prometheus exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{
		ErrorLog: exporterErrorLog{logger: e.logger},
	})
}

// exporterErrorLog adapts the domain logger to promhttp's Logger.
type exporterErrorLog struct {
	logger interfaces.Logger
}

// Println implements promhttp.Logger.
func (l exporterErrorLog) Println(v ...interface{}) {
	l.logger.Error("Metrics exposition failed", "details", v)
}
