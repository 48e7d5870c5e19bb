package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedemptionsTotal counts coupon apply attempts by outcome.
	RedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coupon_redemptions_total",
			Help: "Number of coupon apply attempts by outcome",
		},
		[]string{"outcome"}, // success, already_applied, invalid_code, error
	)

	// RequestDuration tracks HTTP request latency per route and status.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
			},
		},
		[]string{"route", "status"},
	)
)

// RecordRedemption increments the redemption counter for an outcome.
func RecordRedemption(outcome string) {
	RedemptionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRequest records the duration of one HTTP request.
func ObserveRequest(route, status string, seconds float64) {
	RequestDuration.WithLabelValues(route, status).Observe(seconds)
}
