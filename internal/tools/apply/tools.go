// Package apply implements MCP tools for the Terraform Cloud applies API.
package apply

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterApplyTools registers all apply tools with the MCP server.
func RegisterApplyTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	detailsTool := mcp.NewTool("get_apply_details",
		mcp.WithDescription("Get details for a specific apply"),
		mcp.WithString("apply_id",
			mcp.Required(),
			mcp.Description("ID of the apply (format: apply-xxxxxxxx)"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_apply_details", handleGetApplyDetails, sc))

	erroredStateTool := mcp.NewTool("get_errored_state",
		mcp.WithDescription("Get the errored state left behind by a failed apply"),
		mcp.WithString("apply_id",
			mcp.Required(),
			mcp.Description("ID of the apply (format: apply-xxxxxxxx)"),
		),
	)
	s.AddTool(erroredStateTool, tools.WrapWithLogging("get_errored_state", handleGetErroredState, sc))

	logsTool := mcp.NewTool("get_apply_logs",
		mcp.WithDescription("Get the raw log output for a specific apply"),
		mcp.WithString("apply_id",
			mcp.Required(),
			mcp.Description("ID of the apply (format: apply-xxxxxxxx)"),
		),
	)
	s.AddTool(logsTool, tools.WrapWithLogging("get_apply_logs", handleGetApplyLogs, sc))

	return nil
}
