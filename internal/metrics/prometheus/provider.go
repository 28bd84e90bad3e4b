package prometheus

import (
	"strconv"
	"time"

	"blog-post-service/internal/metrics"
)

type PrometheusMetricsProvider struct{}

func NewPrometheusMetricsProvider() metrics.MetricsProvider {
	return &PrometheusMetricsProvider{}
}

func (p *PrometheusMetricsProvider) IncrementHTTPRequests(method, path, status string) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (p *PrometheusMetricsProvider) RecordHTTPRequestDuration(method, path string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	DatabaseQueriesTotal.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {
	DatabaseQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementPostOperations(operation string, success bool) {
	PostOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
