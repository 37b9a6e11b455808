package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// AnalyzeTotal counts analysis requests by outcome.
	AnalyzeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dentiscan",
		Subsystem: "portal",
		Name:      "analyze_total",
		Help:      "Total number of image analysis requests, labeled by result.",
	}, []string{"result"})

	// AnalyzeDurationSeconds is end-to-end time per analysis request.
	AnalyzeDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dentiscan",
		Subsystem: "portal",
		Name:      "analyze_duration_seconds",
		Help:      "End-to-end time of an image analysis request, including the hosted model call.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 60, 120},
	}, []string{"result"})

	// NarrateTotal counts narration requests by outcome.
	NarrateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dentiscan",
		Subsystem: "portal",
		Name:      "narrate_total",
		Help:      "Total number of narration synthesis requests, labeled by result.",
	}, []string{"result"})

	// NarrateDurationSeconds is time spent in the voice-synthesis call.
	NarrateDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dentiscan",
		Subsystem: "portal",
		Name:      "narrate_duration_seconds",
		Help:      "Time of a voice-synthesis call.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 60},
	})

	// SessionsActive is the current number of live interactive sessions.
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dentiscan",
		Subsystem: "portal",
		Name:      "sessions_active",
		Help:      "Current number of live interactive sessions.",
	})
)

// Register installs the collectors into the default registry. Safe to
// call more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AnalyzeTotal,
			AnalyzeDurationSeconds,
			NarrateTotal,
			NarrateDurationSeconds,
			SessionsActive,
		)
	})
}
