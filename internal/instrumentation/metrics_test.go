package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectMetricNames(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := make(map[string]metricdata.Metrics)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			names[m.Name] = m
		}
	}
	return names
}

func newTestMetrics(t *testing.T, detailedLabels bool) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewMetrics(provider.Meter("test"), detailedLabels)
	require.NoError(t, err)
	return m, reader
}

func TestRecordAPIRequest(t *testing.T) {
	m, reader := newTestMetrics(t, false)

	m.RecordAPIRequest(context.Background(), "GET", "workspace", StatusSuccess, 250*time.Millisecond)
	m.RecordAPIRequest(context.Background(), "POST", "run", StatusError, 10*time.Millisecond)

	names := collectMetricNames(t, reader)
	assert.Contains(t, names, "terraform_cloud_api_requests_total")
	assert.Contains(t, names, "terraform_cloud_api_request_duration_seconds")

	sum, ok := names["terraform_cloud_api_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	// One data point per method/status combination.
	assert.Len(t, sum.DataPoints, 2)
}

func TestRecordAPIRequestDetailedLabels(t *testing.T) {
	m, reader := newTestMetrics(t, true)

	m.RecordAPIRequest(context.Background(), "GET", "workspace", StatusSuccess, time.Millisecond)
	m.RecordAPIRequest(context.Background(), "GET", "run", StatusSuccess, time.Millisecond)

	names := collectMetricNames(t, reader)
	sum, ok := names["terraform_cloud_api_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	// resource_type splits otherwise identical label sets.
	assert.Len(t, sum.DataPoints, 2)
}

func TestRecordResponseFiltered(t *testing.T) {
	m, reader := newTestMetrics(t, false)

	m.RecordResponseFiltered(context.Background(), "workspace", "list")
	m.RecordResponseFiltered(context.Background(), "workspace", "list")

	names := collectMetricNames(t, reader)
	sum, ok := names["terraform_cloud_responses_filtered_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

func TestRecordToolInvocation(t *testing.T) {
	m, reader := newTestMetrics(t, false)

	m.RecordToolInvocation(context.Background(), "list_workspaces", StatusSuccess, 100*time.Millisecond)

	names := collectMetricNames(t, reader)
	assert.Contains(t, names, "mcp_tool_invocations_total")
	assert.Contains(t, names, "mcp_tool_duration_seconds")
}

func TestRecordHTTPRequest(t *testing.T) {
	m, reader := newTestMetrics(t, false)

	m.RecordHTTPRequest(context.Background(), "POST", "/mcp", 200, 5*time.Millisecond)

	names := collectMetricNames(t, reader)
	assert.Contains(t, names, "http_requests_total")
	assert.Contains(t, names, "http_request_duration_seconds")
}

func TestZeroValueMetricsIsNoOp(t *testing.T) {
	// A disabled provider hands out a zero-value recorder; recording through
	// it must be safe.
	var m Metrics
	assert.NotPanics(t, func() {
		m.RecordHTTPRequest(context.Background(), "GET", "/", 200, time.Millisecond)
		m.RecordAPIRequest(context.Background(), "GET", "workspace", StatusSuccess, time.Millisecond)
		m.RecordResponseFiltered(context.Background(), "workspace", "read")
		m.RecordToolInvocation(context.Background(), "get_workspace_details", StatusSuccess, time.Millisecond)
	})
}
