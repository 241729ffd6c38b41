package carapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autohub",
		Subsystem: "carapi",
		Name:      "requests_total",
		Help:      "Requests sent to the car-listing API.",
	}, []string{"op", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "autohub",
		Subsystem: "carapi",
		Name:      "request_duration_ms",
		Help:      "Car-listing API latency in milliseconds.",
		Buckets:   []float64{25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"op"})
)

// observe records one upstream call. Transport failures are labelled "error".
func observe(op string, status int, err error, elapsed time.Duration) {
	label := strconv.Itoa(status)
	if err != nil {
		label = "error"
	}
	requestsTotal.WithLabelValues(op, label).Inc()
	requestDuration.WithLabelValues(op).Observe(float64(elapsed.Milliseconds()))
}
