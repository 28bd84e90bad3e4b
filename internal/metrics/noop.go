package metrics

import "time"

// NoopMetricsProvider discards all measurements; used in tests.
type NoopMetricsProvider struct{}

func NewNoopMetricsProvider() MetricsProvider {
	return &NoopMetricsProvider{}
}

func (p *NoopMetricsProvider) IncrementHTTPRequests(method, path, status string) {}

func (p *NoopMetricsProvider) RecordHTTPRequestDuration(method, path string, duration time.Duration) {
}

func (p *NoopMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {}

func (p *NoopMetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {}

func (p *NoopMetricsProvider) IncrementPostOperations(operation string, success bool) {}

func (p *NoopMetricsProvider) SetServiceHealth(healthy bool) {}
