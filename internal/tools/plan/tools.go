// Package plan implements MCP tools for the Terraform Cloud plans API.
package plan

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterPlanTools registers all plan tools with the MCP server.
func RegisterPlanTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	detailsTool := mcp.NewTool("get_plan_details",
		mcp.WithDescription("Get details for a specific plan"),
		mcp.WithString("plan_id",
			mcp.Required(),
			mcp.Description("ID of the plan (format: plan-xxxxxxxx)"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_plan_details", handleGetPlanDetails, sc))

	jsonOutputTool := mcp.NewTool("get_plan_json_output",
		mcp.WithDescription("Get the JSON execution plan for a specific plan"),
		mcp.WithString("plan_id",
			mcp.Required(),
			mcp.Description("ID of the plan (format: plan-xxxxxxxx)"),
		),
	)
	s.AddTool(jsonOutputTool, tools.WrapWithLogging("get_plan_json_output", handleGetPlanJSONOutput, sc))

	runJSONOutputTool := mcp.NewTool("get_run_plan_json_output",
		mcp.WithDescription("Get the JSON execution plan for a run's plan"),
		mcp.WithString("run_id",
			mcp.Required(),
			mcp.Description("ID of the run (format: run-xxxxxxxx)"),
		),
	)
	s.AddTool(runJSONOutputTool, tools.WrapWithLogging("get_run_plan_json_output", handleGetRunPlanJSONOutput, sc))

	logsTool := mcp.NewTool("get_plan_logs",
		mcp.WithDescription("Get the raw log output for a specific plan"),
		mcp.WithString("plan_id",
			mcp.Required(),
			mcp.Description("ID of the plan (format: plan-xxxxxxxx)"),
		),
	)
	s.AddTool(logsTool, tools.WrapWithLogging("get_plan_logs", handleGetPlanLogs, sc))

	return nil
}
