package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterUpdates            *prometheus.CounterVec
	CounterPlansServed        prometheus.Counter
	CounterReportsSubmitted   prometheus.Counter
	CounterReportConflicts    prometheus.Counter
	CounterHandleUpdatePanic  prometheus.Counter
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramBackendRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("trenerbot", "test_bot", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterUpdates := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "updates",
		Help:      "The total number of handled chat updates",
	}, []string{"handler", "outcome"})
	counterPlansServed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "plans_served",
		Help:      "The total number of training plans rendered and sent",
	})
	counterReportsSubmitted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reports_submitted",
		Help:      "The total number of reports accepted by the backend",
	})
	counterReportConflicts := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "report_conflicts",
		Help:      "The total number of duplicate report submissions",
	})
	counterHandleUpdatePanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_update_panic",
		Help:      "The total number of panics while handling updates",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of panics while handling http requests",
	})

	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramBackendRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "backend_request_duration_seconds",
		Help:      "Histogram of backend API request durations in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"endpoint", "status"})

	return &Manager{
		CounterUpdates:            counterUpdates,
		CounterPlansServed:        counterPlansServed,
		CounterReportsSubmitted:   counterReportsSubmitted,
		CounterReportConflicts:    counterReportConflicts,
		CounterHandleUpdatePanic:  counterHandleUpdatePanic,
		CounterHandleRequestPanic: counterHandleRequestPanic,

		GaugeLifeSignal: gaugeLifeSignal,

		HistogramBackendRequestDuration: histogramBackendRequestDuration,
	}
}
