package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	methodCoverage  = "coverage"
	methodVS        = "vs"
	methodThreshold = "threshold"
	methodSimulate  = "simulate"
)

var (
	// calculationsTotal counts calculations by method and result
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "handodds_calculations_total",
		Help: "Total probability calculations by method and result",
	}, []string{"method", "result"})

	// calculationDuration tracks engine latency
	calculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "handodds_calculation_duration_seconds",
		Help:    "Probability calculation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	}, []string{"method"})
)

func observe(method string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	calculationsTotal.WithLabelValues(method, result).Inc()
	calculationDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
