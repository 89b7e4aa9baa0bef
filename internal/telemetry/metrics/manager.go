package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests                 *prometheus.CounterVec
	CounterHandleRequestPanic       prometheus.Counter
	CounterRateLimitedRequests      *prometheus.CounterVec
	CounterWorkoutsCompleted        prometheus.Counter
	CounterReactions                *prometheus.CounterVec
	CounterMilestonesPublished      *prometheus.CounterVec
	CounterMilestonePublishFailures prometheus.Counter
	CounterMilestoneJobsDropped     prometheus.Counter
	CounterMirrorFallbacks          *prometheus.CounterVec

	// gauges
	GaugeRequests            prometheus.Gauge
	GaugeLifeSignal          prometheus.Gauge
	GaugeMilestoneQueueDepth prometheus.Gauge

	// histograms
	HistogramRequestDuration   *prometheus.HistogramVec
	HistMilestoneDetectSeconds prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("liftlog", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("liftlog", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	}, []string{"route"})
	counterWorkoutsCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_completed",
		Help:      "The total number of completed workouts",
	})
	counterReactions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reactions",
		Help:      "Reactions returned to users, by trigger",
	}, []string{"trigger"})
	counterMilestonesPublished := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "milestones_published",
		Help:      "Milestones persisted, by type",
	}, []string{"type"})
	counterMilestonePublishFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "milestone_publish_failures",
		Help:      "Milestone detection jobs that ended with at least one error",
	})
	counterMilestoneJobsDropped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "milestone_jobs_dropped",
		Help:      "Milestone detection jobs dropped because the queue was full",
	})
	counterMirrorFallbacks := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "store_mirror_fallbacks",
		Help:      "Reads served from the local store because the remote one failed",
	}, []string{"op"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeMilestoneQueueDepth := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "milestone_queue_depth",
		Help:      "Milestone detection jobs waiting for a worker",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histMilestoneDetectSeconds := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "milestone_detect_duration_seconds",
		Help:      "Duration of a single milestone detection job in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	})

	return &Manager{
		CounterRequests:                 counterRequests,
		CounterHandleRequestPanic:       counterHandleRequestPanic,
		CounterRateLimitedRequests:      counterRateLimitedRequests,
		CounterWorkoutsCompleted:        counterWorkoutsCompleted,
		CounterReactions:                counterReactions,
		CounterMilestonesPublished:      counterMilestonesPublished,
		CounterMilestonePublishFailures: counterMilestonePublishFailures,
		CounterMilestoneJobsDropped:     counterMilestoneJobsDropped,
		CounterMirrorFallbacks:          counterMirrorFallbacks,
		GaugeRequests:                   gaugeRequests,
		GaugeLifeSignal:                 gaugeLifeSignal,
		GaugeMilestoneQueueDepth:        gaugeMilestoneQueueDepth,
		HistogramRequestDuration:        histogramRequestDuration,
		HistMilestoneDetectSeconds:      histMilestoneDetectSeconds,
	}
}
