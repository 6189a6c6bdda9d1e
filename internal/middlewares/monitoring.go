package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	productOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_product_operations_total",
			Help: "Total number of product catalog operations",
		},
		[]string{"operation", "status"},
	)

	reviewOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_review_operations_total",
			Help: "Total number of review generation operations",
		},
		[]string{"operation", "status"},
	)
)

// PrometheusMiddleware registra contadores y latencias por request
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
	}
}

// RecordProductOperation registra el resultado de una operación de catálogo
func RecordProductOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	productOperations.WithLabelValues(operation, status).Inc()
}

// RecordReviewOperation registra el resultado de una generación de reseñas
func RecordReviewOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	reviewOperations.WithLabelValues(operation, status).Inc()
}
