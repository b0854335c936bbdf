package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "health_tracker"

// Classification sources.
const (
	SourceModel     = "model"
	SourceHeuristic = "heuristic"
)

var (
	classificationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "classifier",
		Name:      "classifications_total",
		Help:      "Number of classified messages by source and resulting type.",
	}, []string{"source", "type"})

	modelFailureCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "classifier",
		Name:      "model_failures_total",
		Help:      "Number of model classification attempts that degraded to the heuristic, by failure stage.",
	}, []string{"stage"})

	classifyLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "classifier",
		Name:      "classify_duration_seconds",
		Help:      "End-to-end classification latency.",
		Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"source"})

	messageCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "router",
		Name:      "messages_total",
		Help:      "Number of routed messages by intent and outcome.",
	}, []string{"intent", "outcome"})

	repositoryErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "errors_total",
		Help:      "Number of failed repository calls by operation.",
	}, []string{"operation"})

	digestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "digest",
		Name:      "reports_total",
		Help:      "Number of scheduled weekly reports by outcome.",
	}, []string{"outcome"})

	webhookRejectCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "webhook",
		Name:      "rejected_total",
		Help:      "Number of inbound webhook requests refused by the guard, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(
		classificationCounter,
		modelFailureCounter,
		classifyLatency,
		messageCounter,
		repositoryErrorCounter,
		digestCounter,
		webhookRejectCounter,
	)
}

// RecordClassification counts a finished classification and its latency.
func RecordClassification(source, classificationType string, elapsed time.Duration) {
	classificationCounter.WithLabelValues(source, classificationType).Inc()
	classifyLatency.WithLabelValues(source).Observe(elapsed.Seconds())
}

// RecordModelFailure counts a model attempt that fell back to the heuristic.
func RecordModelFailure(stage string) {
	modelFailureCounter.WithLabelValues(stage).Inc()
}

// RecordMessage counts a routed message. outcome is "ok" or "failed".
func RecordMessage(intent, outcome string) {
	messageCounter.WithLabelValues(intent, outcome).Inc()
}

func RecordRepositoryError(operation string) {
	repositoryErrorCounter.WithLabelValues(operation).Inc()
}

func RecordDigest(outcome string) {
	digestCounter.WithLabelValues(outcome).Inc()
}

// RecordWebhookRejected counts a request refused before reaching a handler.
func RecordWebhookRejected(reason string) {
	webhookRejectCounter.WithLabelValues(reason).Inc()
}
