package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_http_requests_total",
			Help: "Total HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	// RecordsProcessed counts reconciled records by outcome (created/updated/failed).
	RecordsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_records_processed_total",
			Help: "Inventory records processed by outcome.",
		},
		[]string{"outcome"},
	)

	// IngestDuration observes the wall time of a whole ingestion run.
	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_ingest_duration_seconds",
			Help:    "Duration of inventory ingestion runs in seconds.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	// ReportsGenerated counts store reports by format and cache result.
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_reports_generated_total",
			Help: "Store reports generated by format and source.",
		},
		[]string{"format", "source"},
	)

	// UploadsRejected counts uploads turned away by the concurrency limiter.
	UploadsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_uploads_rejected_total",
			Help: "Uploads rejected because too many were in flight.",
		},
	)
)

// Outcome labels for RecordsProcessed.
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
)

// Middleware records request count and latency for every route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
