package life

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine metrics, shared by every engine in the process.
var (
	stepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifegrid_steps_total",
		Help: "Generations computed across all engines",
	})

	stepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lifegrid_step_duration_seconds",
		Help:    "Time to compute one generation",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	})

	rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifegrid_rejections_total",
		Help: "Operations rejected without changing engine state",
	}, []string{"kind"})
)
