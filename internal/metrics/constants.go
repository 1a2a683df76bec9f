package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "codecasino_http_requests_total"
	MetricNameHTTPRequestDuration  = "codecasino_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "codecasino_http_requests_in_flight"

	MetricNameBetsSettled         = "codecasino_bets_settled_total"
	MetricNamePointsWagered       = "codecasino_points_wagered_total"
	MetricNamePointsWon           = "codecasino_points_won_total"
	MetricNameChallengesGenerated = "codecasino_challenges_generated_total"
	MetricNameCacheHits           = "codecasino_challenge_cache_hits_total"
	MetricNameCacheMisses         = "codecasino_challenge_cache_misses_total"
	MetricNameGeneratorFallbacks  = "codecasino_generator_fallbacks_total"
	MetricNameDailyCacheEntries   = "codecasino_daily_cache_entries"
	MetricNameEventsPublished     = "codecasino_events_published_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextBetsSettled         = "Total number of settled wagers"
	HelpTextPointsWagered       = "Total points wagered across all settlements"
	HelpTextPointsWon           = "Total points paid out across all settlements"
	HelpTextChallengesGenerated = "Total number of challenges issued"
	HelpTextCacheHits           = "Challenge cache lookups that found an entry"
	HelpTextCacheMisses         = "Challenge cache lookups that fell back to the default policy"
	HelpTextGeneratorFallbacks  = "Generator calls that degraded to the persisted pool"
	HelpTextDailyCacheEntries   = "Number of retained daily challenge cache entries"
	HelpTextEventsPublished     = "Total number of events published on the in-process bus"
)

// Log messages
const (
	LogMsgMetricsRecorded         = "Metrics recorded for event"
	LogMsgEventPayloadUnsupported = "Event payload type not recognized for metrics"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult    = "result"
	LabelSource    = "source"
	LabelEventType = "type"
)

// Label values
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// HTTPLatencyBuckets covers the expected settlement latency range
var HTTPLatencyBuckets = prometheus.ExponentialBuckets(0.001, 2, 12)
