// Package assessment implements MCP tools for the Terraform Cloud health
// assessment results API.
package assessment

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterAssessmentTools registers all assessment result tools with the MCP
// server.
func RegisterAssessmentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	detailsTool := mcp.NewTool("get_assessment_result_details",
		mcp.WithDescription("Get details for a specific health assessment result"),
		mcp.WithString("assessment_result_id",
			mcp.Required(),
			mcp.Description("ID of the assessment result (format: asmtres-xxxxxxxx)"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_assessment_result_details", handleGetAssessmentResultDetails, sc))

	jsonOutputTool := mcp.NewTool("get_assessment_json_output",
		mcp.WithDescription("Get the JSON plan generated by a health assessment"),
		mcp.WithString("assessment_result_id",
			mcp.Required(),
			mcp.Description("ID of the assessment result (format: asmtres-xxxxxxxx)"),
		),
	)
	s.AddTool(jsonOutputTool, tools.WrapWithLogging("get_assessment_json_output", handleGetAssessmentJSONOutput, sc))

	jsonSchemaTool := mcp.NewTool("get_assessment_json_schema",
		mcp.WithDescription("Get the JSON provider schema used by a health assessment"),
		mcp.WithString("assessment_result_id",
			mcp.Required(),
			mcp.Description("ID of the assessment result (format: asmtres-xxxxxxxx)"),
		),
	)
	s.AddTool(jsonSchemaTool, tools.WrapWithLogging("get_assessment_json_schema", handleGetAssessmentJSONSchema, sc))

	logOutputTool := mcp.NewTool("get_assessment_log_output",
		mcp.WithDescription("Get the raw log output of a health assessment"),
		mcp.WithString("assessment_result_id",
			mcp.Required(),
			mcp.Description("ID of the assessment result (format: asmtres-xxxxxxxx)"),
		),
	)
	s.AddTool(logOutputTool, tools.WrapWithLogging("get_assessment_log_output", handleGetAssessmentLogOutput, sc))

	return nil
}
