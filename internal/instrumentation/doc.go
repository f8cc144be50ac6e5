// Package instrumentation provides OpenTelemetry instrumentation for the
// mcp-terraform-cloud server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for HTTP requests, Terraform Cloud API calls,
//     and MCP tool invocations
//   - Distributed tracing for request flows and API calls
//   - Prometheus metrics export via /metrics endpoint
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Server/HTTP Metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Terraform Cloud API Metrics:
//   - terraform_cloud_api_requests_total: Counter of API calls by method, resource_type, status
//   - terraform_cloud_api_request_duration_seconds: Histogram of API call durations
//   - terraform_cloud_responses_filtered_total: Counter of responses reduced by the filtering engine
//
// Tool Metrics:
//   - mcp_tool_invocations_total: Counter of tool invocations by tool and status
//   - mcp_tool_duration_seconds: Histogram of tool invocation durations
//
// # Cardinality Considerations
//
// API paths embed organization names and resource IDs. Metric labels never
// carry raw paths: use NormalizeAPIPath to collapse dynamic segments before
// recording, and keep detailed labels disabled unless the deployment serves
// a small, known set of organizations.
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: false)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: mcp-terraform-cloud)
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "mcp-terraform-cloud",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	recorder := provider.Metrics()
//	recorder.RecordAPIRequest(ctx, "GET", "workspace", "success", time.Since(start))
package instrumentation
