package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)

	RequestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameRequestsRejected,
			Help:      HelpTextRequestsRejected,
		},
		[]string{LabelReason},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNamePointsAwarded,
			Help:      HelpTextPointsAwarded,
		},
	)

	PointsDeducted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNamePointsDeducted,
			Help:      HelpTextPointsDeducted,
		},
	)

	RewardsRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameRewardsRedeemed,
			Help:      HelpTextRewardsRedeemed,
		},
	)

	PointsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNamePointsSpent,
			Help:      HelpTextPointsSpent,
		},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameLevelUps,
			Help:      HelpTextLevelUps,
		},
		[]string{LabelLevel},
	)

	StudentsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameStudentsImported,
			Help:      HelpTextStudentsImported,
		},
	)

	ImportGroupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameImportFailures,
			Help:      HelpTextImportFailures,
		},
	)

	ThresholdUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameThresholdUpdates,
			Help:      HelpTextThresholdUpdates,
		},
	)

	LedgerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameLedgerErrors,
			Help:      HelpTextLedgerErrors,
		},
		[]string{LabelOperation, LabelKind},
	)
)

// RecordLedgerError counts a failed operation under its error kind.
func RecordLedgerError(operation, kind string) {
	LedgerErrors.WithLabelValues(operation, kind).Inc()
}
