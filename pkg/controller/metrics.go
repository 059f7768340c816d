package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tasjeel/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware that records request count and latency per
// method, path and status code through the given meter provider.
func WithMetrics(meterProvider metric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := meterProvider.Meter("tasjeel/http")

	requests, err := meter.Int64Counter("http_requests_total",
		metric.WithDescription("Total number of handled HTTP requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	latency, err := meter.Float64Histogram("http_request_duration_seconds",
		metric.WithDescription("HTTP request latency in seconds"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("path", r.URL.Path),
			attribute.String("status", strconv.Itoa(rec.status)),
		)
		requests.Add(r.Context(), 1, attrs)
		latency.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
