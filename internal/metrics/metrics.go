// Package metrics registers the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	BetsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsSettled,
			Help: HelpTextBetsSettled,
		},
		[]string{LabelResult, LabelSource},
	)

	PointsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsWagered,
			Help: HelpTextPointsWagered,
		},
	)

	PointsWon = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsWon,
			Help: HelpTextPointsWon,
		},
	)

	ChallengesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChallengesGenerated,
			Help: HelpTextChallengesGenerated,
		},
		[]string{LabelSource},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		},
	)

	GeneratorFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGeneratorFallbacks,
			Help: HelpTextGeneratorFallbacks,
		},
	)

	DailyCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDailyCacheEntries,
			Help: HelpTextDailyCacheEntries,
		},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelEventType},
	)
)

// RecordSettlement updates the business counters for a finished wager.
func RecordSettlement(result, source string, pointsBet, pointsWon int) {
	BetsSettled.WithLabelValues(result, source).Inc()
	PointsWagered.Add(float64(pointsBet))
	if pointsWon > 0 {
		PointsWon.Add(float64(pointsWon))
	}
}
