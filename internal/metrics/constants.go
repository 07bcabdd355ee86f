package metrics

// ============================================================================
// Metric Names
// ============================================================================

// MetricNamespace prefixes every metric exported by the service
const MetricNamespace = "classpoint"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameRequestsRejected     = "http_requests_rejected_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePointsAwarded    = "points_awarded_total"
	MetricNamePointsDeducted   = "points_deducted_total"
	MetricNameRewardsRedeemed  = "rewards_redeemed_total"
	MetricNamePointsSpent      = "points_spent_total"
	MetricNameLevelUps         = "level_ups_total"
	MetricNameStudentsImported = "students_imported_total"
	MetricNameImportFailures   = "import_group_failures_total"
	MetricNameThresholdUpdates = "threshold_updates_total"
	MetricNameLedgerErrors     = "ledger_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRequestsRejected     = "Requests refused before routing, by reason"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPointsAwarded    = "Total points requested by positive adjustments"
	HelpTextPointsDeducted   = "Total points requested by negative adjustments"
	HelpTextRewardsRedeemed  = "Total number of rewards redeemed"
	HelpTextPointsSpent      = "Total points spent on rewards"
	HelpTextLevelUps         = "Total number of level-ups by level reached"
	HelpTextStudentsImported = "Total number of students created by bulk import"
	HelpTextImportFailures   = "Total number of import groups rolled back"
	HelpTextThresholdUpdates = "Total number of saved threshold changes"
	HelpTextLedgerErrors     = "Total number of failed ledger operations by kind"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelLevel     = "level"
	LabelOperation = "operation"
	LabelKind      = "kind"
	LabelReason    = "reason"
)

// Rejection reasons
const (
	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
)

// unmatchedRoute labels requests that no route pattern matched
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
