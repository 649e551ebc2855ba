package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/healthpredict/healthpredict/pkg/constants"
)

// Metrics manages the Prometheus metrics.
type Metrics struct {
	AssessmentRequests *prometheus.CounterVec
	AssessmentLatency  *prometheus.HistogramVec
	RecorderFailures   *prometheus.CounterVec
	NarrativeLatency   *prometheus.HistogramVec
	ChatRequests       *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPLatency        *prometheus.HistogramVec
}

// NewMetrics creates and registers the Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		AssessmentRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "healthpredict_assessment_requests_total",
				Help: "Total number of risk assessment requests.",
			},
			[]string{"type", "result"},
		),
		AssessmentLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "healthpredict_assessment_latency_seconds",
				Help:    "Latency of the assessment pipeline.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		RecorderFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "healthpredict_recorder_failures_total",
				Help: "Total number of swallowed prediction log failures.",
			},
			[]string{"type"},
		),
		NarrativeLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "healthpredict_narrative_latency_seconds",
				Help:    "Latency of narrative generation calls.",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30},
			},
			[]string{"result"},
		),
		ChatRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "healthpredict_chat_requests_total",
				Help: "Total number of chat bot requests.",
			},
			[]string{"bot", "result"},
		),
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "healthpredict_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "healthpredict_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordAssessment records one assessment pipeline completion.
func (m *Metrics) RecordAssessment(typ constants.AssessmentType, result string, duration time.Duration) {
	m.AssessmentRequests.WithLabelValues(string(typ), result).Inc()
	m.AssessmentLatency.WithLabelValues(string(typ)).Observe(duration.Seconds())
}

// RecordRecorderFailure records a swallowed prediction log failure.
func (m *Metrics) RecordRecorderFailure(typ string) {
	m.RecorderFailures.WithLabelValues(typ).Inc()
}

// RecordNarrative records one narrative generation call.
func (m *Metrics) RecordNarrative(result string, duration time.Duration) {
	m.NarrativeLatency.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordChat records one chat bot exchange.
func (m *Metrics) RecordChat(bot constants.ConversationType, result string) {
	m.ChatRequests.WithLabelValues(string(bot), result).Inc()
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.HTTPLatency.WithLabelValues(method, path).Observe(duration.Seconds())
}
