package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "radar"

// Metrics is safe to use as a nil pointer; every method becomes a no-op.
type Metrics struct {
	StageRequests *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	Hotness       prometheus.Histogram
	Submissions   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StageRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_requests_total",
			Help:      "Pipeline stage executions by outcome.",
		}, []string{"stage", "status"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		}, []string{"stage"}),
		Hotness: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "hotness_score",
			Help:      "Distribution of computed hotness scores.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Event submissions by channel and hotness mode.",
		}, []string{"channel", "mode"}),
	}

	if reg != nil {
		reg.MustRegister(m.StageRequests, m.StageDuration, m.Hotness, m.Submissions)
	}
	return m
}

func (m *Metrics) ObserveStage(stage, status string, elapsed time.Duration) {
	if m == nil || m.StageRequests == nil || m.StageDuration == nil {
		return
	}

	m.StageRequests.WithLabelValues(stage, status).Inc()
	m.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveHotness(score float64) {
	if m == nil || m.Hotness == nil {
		return
	}

	m.Hotness.Observe(score)
}

func (m *Metrics) IncSubmission(channel, mode string) {
	if m == nil || m.Submissions == nil {
		return
	}

	m.Submissions.WithLabelValues(channel, mode).Inc()
}
