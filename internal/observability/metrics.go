package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	ChatQueries       *prometheus.CounterVec
	CompletionLatency prometheus.Histogram
	TopicsDetected    *prometheus.CounterVec
	ActiveSessions    prometheus.Gauge
	IngestReceived    *prometheus.CounterVec
	UrgentAlerts      prometheus.Counter
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ChatQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_queries_total",
			Help:      "Chat queries by outcome.",
		}, []string{"outcome"}),
		CompletionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_latency_ms",
			Help:      "Latency of completion round trips in milliseconds.",
			Buckets:   []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000},
		}),
		TopicsDetected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_topics_detected_total",
			Help:      "Detected legal topics by tag.",
		}, []string{"topic"}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_chat_sessions",
			Help:      "Number of sessions currently held in the memory store.",
		}),
		IngestReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_received_total",
			Help:      "Ingested records by kind (circular, alert, notification).",
		}, []string{"kind"}),
		UrgentAlerts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "urgent_alerts_total",
			Help:      "Alerts and notifications received at high or critical severity.",
		}),
	}
}

func (m *Metrics) ObserveCompletionLatency(d time.Duration) {
	m.CompletionLatency.Observe(float64(d.Milliseconds()))
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
