// Package metrics records Prometheus metrics for outbound API requests.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Labels are method and status only; request paths carry record ids
	// and would blow up cardinality.
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_requests_total",
			Help: "Total number of API requests issued by the client",
		},
		[]string{"method", "status"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)

	apiRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_client_requests_in_flight",
			Help: "Number of API requests currently awaiting a response",
		},
	)
)

// RequestStarted marks a request as in flight and returns a done
// function that records its outcome. A status of 0 means the transport
// failed before producing a response.
func RequestStarted(method string) func(status int) {
	start := time.Now()
	apiRequestsInFlight.Inc()

	return func(status int) {
		apiRequestsInFlight.Dec()
		apiRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
		apiRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}
