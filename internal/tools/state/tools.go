// Package state implements MCP tools for the Terraform Cloud state versions
// and state version outputs APIs.
package state

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterStateTools registers all state version tools with the MCP server.
func RegisterStateTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("list_state_versions",
		mcp.WithDescription("List state versions for a workspace"),
		mcp.WithString("filter_organization_name",
			mcp.Required(),
			mcp.Description("Name of the organization that owns the workspace"),
		),
		mcp.WithString("filter_workspace_name",
			mcp.Required(),
			mcp.Description("Name of the workspace"),
		),
		mcp.WithNumber("page_number",
			mcp.Description("Page number to fetch (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of results per page (default: 20)"),
		),
		mcp.WithString("filter_status",
			mcp.Description("Filter by state version status: 'pending', 'finalized', or 'discarded'"),
		),
	)
	s.AddTool(listTool, tools.WrapWithLogging("list_state_versions", handleListStateVersions, sc))

	currentTool := mcp.NewTool("get_current_state_version",
		mcp.WithDescription("Get the current state version of a workspace"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
		),
	)
	s.AddTool(currentTool, tools.WrapWithLogging("get_current_state_version", handleGetCurrentStateVersion, sc))

	detailsTool := mcp.NewTool("get_state_version_details",
		mcp.WithDescription("Get details for a specific state version"),
		mcp.WithString("state_version_id",
			mcp.Required(),
			mcp.Description("ID of the state version (format: sv-xxxxxxxx)"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_state_version_details", handleGetStateVersionDetails, sc))

	createTool := mcp.NewTool("create_state_version",
		mcp.WithDescription("Create a new state version in a workspace. The workspace must be locked by the calling user"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
		),
		mcp.WithNumber("serial",
			mcp.Required(),
			mcp.Description("Serial number of this state instance"),
		),
		mcp.WithString("md5",
			mcp.Required(),
			mcp.Description("MD5 hash of the raw state file"),
		),
		mcp.WithString("state",
			mcp.Description("Base64-encoded raw state file contents"),
		),
		mcp.WithString("lineage",
			mcp.Description("Lineage of the state instance"),
		),
		mcp.WithString("json_state",
			mcp.Description("Base64-encoded JSON state, as produced by terraform show -json"),
		),
		mcp.WithString("json_state_outputs",
			mcp.Description("Base64-encoded JSON state outputs"),
		),
	)
	s.AddTool(createTool, tools.WrapWithLogging("create_state_version", handleCreateStateVersion, sc))

	downloadTool := mcp.NewTool("download_state_file",
		mcp.WithDescription("Download the raw or JSON content of a state version"),
		mcp.WithString("state_version_id",
			mcp.Required(),
			mcp.Description("ID of the state version (format: sv-xxxxxxxx)"),
		),
		mcp.WithBoolean("json_format",
			mcp.Description("Download the JSON state representation instead of the raw state file"),
		),
	)
	s.AddTool(downloadTool, tools.WrapWithLogging("download_state_file", handleDownloadStateFile, sc))

	listOutputsTool := mcp.NewTool("list_state_version_outputs",
		mcp.WithDescription("List outputs of a state version. Sensitive values are omitted"),
		mcp.WithString("state_version_id",
			mcp.Required(),
			mcp.Description("ID of the state version (format: sv-xxxxxxxx)"),
		),
		mcp.WithNumber("page_number",
			mcp.Description("Page number to fetch (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of results per page (default: 20)"),
		),
	)
	s.AddTool(listOutputsTool, tools.WrapWithLogging("list_state_version_outputs", handleListStateVersionOutputs, sc))

	outputTool := mcp.NewTool("get_state_version_output",
		mcp.WithDescription("Get details for a specific state version output"),
		mcp.WithString("state_version_output_id",
			mcp.Required(),
			mcp.Description("ID of the state version output (format: wsout-xxxxxxxx)"),
		),
	)
	s.AddTool(outputTool, tools.WrapWithLogging("get_state_version_output", handleGetStateVersionOutput, sc))

	return nil
}
