// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "housecalc_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "housecalc_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	EstimationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "housecalc_estimations_total",
			Help: "Total number of material estimations",
		},
		[]string{"house_type", "status"},
	)

	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "housecalc_catalog_cache_total",
			Help: "Material catalog cache lookups",
		},
		[]string{"result"},
	)
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	// LabelUnsupported is the house_type label of rejected estimations.
	LabelUnsupported = "unsupported"
)

func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordEstimation(houseType, status string) {
	EstimationsTotal.WithLabelValues(houseType, status).Inc()
}

func RecordCacheLookup(hit bool) {
	if hit {
		CatalogCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	CatalogCacheTotal.WithLabelValues("miss").Inc()
}
