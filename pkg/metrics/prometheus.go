package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements the domain Metrics port using Prometheus.
type Recorder struct {
	passesTotal      *prometheus.CounterVec
	passErrors       *prometheus.CounterVec
	staleServes      prometheus.Counter
	notifications    *prometheus.CounterVec
	readMutations    *prometheus.CounterVec
	unreadCount      prometheus.Gauge
	passDuration     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		passesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoppulse_passes_total",
				Help: "Total number of report passes run",
			},
			[]string{"source", "status"},
		),
		passErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoppulse_pass_errors_total",
				Help: "Total number of pass-level errors by kind",
			},
			[]string{"kind"},
		),
		staleServes: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shoppulse_stale_serves_total",
				Help: "Responses served from the last retained snapshot after a fetch failure",
			},
		),
		notifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoppulse_notifications_generated_total",
				Help: "Notifications generated per pass by type",
			},
			[]string{"type"},
		),
		readMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoppulse_read_state_mutations_total",
				Help: "Read-state mutations by operation",
			},
			[]string{"op"},
		),
		unreadCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "shoppulse_unread_notifications",
				Help: "Unread notification count from the most recent pass",
			},
		),
		passDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shoppulse_pass_duration_seconds",
				Help:    "Duration of report passes in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
}

// RecordPass records a completed pass and its duration.
func (r *Recorder) RecordPass(source, status string, seconds float64) {
	r.passesTotal.WithLabelValues(source, status).Inc()
	r.passDuration.WithLabelValues(source).Observe(seconds)
}

// RecordPassError records a pass-level error by kind.
func (r *Recorder) RecordPassError(kind string) {
	r.passErrors.WithLabelValues(kind).Inc()
}

// RecordStaleServe records a response served from the retained snapshot.
func (r *Recorder) RecordStaleServe() {
	r.staleServes.Inc()
}

// RecordNotifications records generated notifications by type.
func (r *Recorder) RecordNotifications(typ string, n int) {
	r.notifications.WithLabelValues(typ).Add(float64(n))
}

// RecordReadMutation records a read-state mutation.
func (r *Recorder) RecordReadMutation(op string) {
	r.readMutations.WithLabelValues(op).Inc()
}

// SetUnreadCount records the latest unread notification count.
func (r *Recorder) SetUnreadCount(n int) {
	r.unreadCount.Set(float64(n))
}
