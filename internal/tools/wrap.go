// Package tools provides shared utilities and types for MCP tool implementations.
package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/instrumentation"
	"github.com/giantswarm/mcp-terraform-cloud/internal/logging"
	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
)

// WrapWithLogging wraps a tool handler with structured logging, metrics, and
// tracing. The wrapper automatically captures:
//   - Tool invocation timing
//   - Success/error status from the handler result
//   - OpenTelemetry trace context for correlation
//
// When no instrumentation provider is configured, only logging is performed.
func WrapWithLogging(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		ctx, span := instrumentation.StartToolSpan(ctx, toolName)
		defer span.End()

		logger := logging.WithTool(sc.Logger(), toolName)

		result, err := handler(ctx, request, sc)

		status := logging.StatusSuccess
		switch {
		case err != nil:
			status = logging.StatusError
			instrumentation.SetSpanError(span, err)
		case result != nil && result.IsError:
			// MCP tool errors are returned in the result, not as Go errors.
			status = logging.StatusError
		default:
			instrumentation.SetSpanSuccess(span)
		}

		duration := time.Since(start)

		if provider := sc.InstrumentationProvider(); provider != nil && provider.Enabled() {
			provider.Metrics().RecordToolInvocation(ctx, toolName, status, duration)
		}

		logger.Debug("tool invocation complete",
			logging.Status(status),
			slog.Duration(logging.KeyDuration, duration))

		return result, err
	}
}
