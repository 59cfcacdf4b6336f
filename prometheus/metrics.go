package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Order lifecycle counters
	OrdersPlacedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	OrdersPaidCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_orders_paid_total",
			Help: "Total number of orders marked paid",
		},
	)

	// Cart mutation counter
	CartOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_cart_operations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"operation"}, // operation can be "add" or "remove"
	)

	// Review counter
	ReviewsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_reviews_created_total",
			Help: "Total number of product reviews created",
		},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Error counters
	RequestErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_request_errors_total",
			Help: "Total number of failed requests by error type",
		},
		[]string{"type"}, // type can be "not_found", "invalid_argument", "conflict", "unauthorized", "internal"
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shop_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shop_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)
)

// Gauge metrics
var (
	// System info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shop_info",
			Help: "Information about the shop service",
		},
		[]string{"version"},
	)
)

func init() {
	// Register counters
	prometheus.MustRegister(OrdersPlacedCounter)
	prometheus.MustRegister(OrdersPaidCounter)
	prometheus.MustRegister(CartOperationCounter)
	prometheus.MustRegister(ReviewsCreatedCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(RequestErrorCounter)

	// Register histograms
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)

	// Register gauges
	prometheus.MustRegister(InfoGauge)

	// Set initial service info
	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// RecordCartOperation records a cart mutation by kind
func RecordCartOperation(operation string) {
	CartOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordRequestError records a failed request by error type
func RecordRequestError(errorType string) {
	RequestErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}
