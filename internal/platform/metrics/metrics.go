package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service. Consumers nil-check
// the receiver so tests can pass nil instead of wiring a registry.
type Metrics struct {
	CheckInAttempts    *prometheus.CounterVec
	GateRejections     *prometheus.CounterVec
	ReasonSubmissions  prometheus.Counter
	PendingResolutions *prometheus.CounterVec
	RemoteLatency      *prometheus.HistogramVec
	HTTPLatency        *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CheckInAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rollcall_checkin_attempts_total",
			Help: "GPS check-in attempts by outcome",
		}, []string{"outcome"}),
		GateRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rollcall_gate_rejections_total",
			Help: "Gating failures raised before any remote call, by error code",
		}, []string{"code"}),
		ReasonSubmissions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rollcall_reason_submissions_total",
			Help: "Late/absent reason submissions accepted",
		}),
		PendingResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rollcall_pending_resolutions_total",
			Help: "Operator approve/reject calls by decision and outcome",
		}, []string{"decision", "outcome"}),
		RemoteLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rollcall_remote_call_duration_seconds",
			Help:    "Latency of attendance backend round-trips",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		HTTPLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rollcall_http_request_duration_seconds",
			Help:    "Latency of inbound HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

func (m *Metrics) ObserveCheckIn(outcome string) {
	if m == nil {
		return
	}
	m.CheckInAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveGateRejection(code string) {
	if m == nil {
		return
	}
	m.GateRejections.WithLabelValues(code).Inc()
}

func (m *Metrics) ObserveReasonSubmission() {
	if m == nil {
		return
	}
	m.ReasonSubmissions.Inc()
}

func (m *Metrics) ObserveResolution(decision, outcome string) {
	if m == nil {
		return
	}
	m.PendingResolutions.WithLabelValues(decision, outcome).Inc()
}

func (m *Metrics) ObserveRemoteLatency(op string, d time.Duration) {
	if m == nil {
		return
	}
	m.RemoteLatency.WithLabelValues(op).Observe(d.Seconds())
}

func (m *Metrics) ObserveHTTPLatency(route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPLatency.WithLabelValues(route, status).Observe(d.Seconds())
}
