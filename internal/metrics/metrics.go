package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/metal-toolbox/user-echo/internal/app"
)

var (
	apiLatencySeconds *prometheus.HistogramVec
	failureCount      *prometheus.CounterVec
)

func init() {
	failureCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: app.AppName,
			Subsystem: "api",
			Name:      "failures_total",
			Help:      "a count of request failures by kind and response code",
		}, []string{
			"kind",
			"response_code",
		},
	)
	apiLatencySeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: app.AppName,
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "api latency measurements in seconds",
			// buckets between 5ms and 10s, the handler does no I/O
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{
			"endpoint",
			"response_code",
		},
	)
}

// ListenAndServe exposes prometheus metrics as /metrics on the given endpoint.
func ListenAndServe(endpoint string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              endpoint,
		Handler:           mux,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			log.Warn("metrics listener stopped", zap.String("endpoint", endpoint), zap.Error(err))
		}
	}()
}

// FailureObserved counts a normalized request failure.
func FailureObserved(kind string, responseCode int) {
	failureCount.WithLabelValues(kind, strconv.Itoa(responseCode)).Inc()
}

// APICallEpilog observes the results and latency of an API call
func APICallEpilog(start time.Time, endpoint string, responseCode int) {
	code := strconv.Itoa(responseCode)
	elapsed := time.Since(start).Seconds()
	apiLatencySeconds.WithLabelValues(endpoint, code).Observe(elapsed)
}
