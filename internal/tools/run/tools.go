// Package run implements MCP tools for the Terraform Cloud runs API.
package run

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterRunTools registers all run tools with the MCP server. Destructive
// tools are only registered when non-destructive mode is disabled.
func RegisterRunTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createTool := mcp.NewTool("create_run",
		mcp.WithDescription("Create a new run (plan and apply cycle) in a workspace"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace to run in (format: ws-xxxxxxxx)"),
		),
		mcp.WithString("message",
			mcp.Description("Message to associate with the run"),
		),
		mcp.WithBoolean("auto_apply",
			mcp.Description("Automatically apply the run if the plan succeeds"),
		),
		mcp.WithBoolean("is_destroy",
			mcp.Description("Plan the destruction of all resources in the workspace"),
		),
		mcp.WithBoolean("plan_only",
			mcp.Description("Create a speculative, plan-only run that cannot be applied"),
		),
		mcp.WithBoolean("refresh",
			mcp.Description("Refresh state before planning (default: true)"),
		),
		mcp.WithBoolean("refresh_only",
			mcp.Description("Only refresh state without proposing changes"),
		),
		mcp.WithBoolean("allow_empty_apply",
			mcp.Description("Allow applying a run with no changes"),
		),
	)
	s.AddTool(createTool, tools.WrapWithLogging("create_run", handleCreateRun, sc))

	listInWorkspaceTool := mcp.NewTool("list_runs_in_workspace",
		mcp.WithDescription("List runs in a workspace"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
		),
		mcp.WithNumber("page_number",
			mcp.Description("Page number to fetch (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of results per page (default: 20)"),
		),
		mcp.WithString("filter_operation",
			mcp.Description("Comma-separated run operations to filter by (e.g. 'plan_only,destroy')"),
		),
		mcp.WithString("filter_status",
			mcp.Description("Comma-separated run statuses to filter by (e.g. 'planned,applied')"),
		),
		mcp.WithString("filter_source",
			mcp.Description("Comma-separated run sources to filter by (e.g. 'tfe-api,tfe-ui')"),
		),
		mcp.WithString("search_user",
			mcp.Description("Search for runs by VCS username"),
		),
		mcp.WithString("search_commit",
			mcp.Description("Search for runs by commit SHA"),
		),
	)
	s.AddTool(listInWorkspaceTool, tools.WrapWithLogging("list_runs_in_workspace", handleListRunsInWorkspace, sc))

	listInOrganizationTool := mcp.NewTool("list_runs_in_organization",
		mcp.WithDescription("List runs across all workspaces in an organization"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization"),
		),
		mcp.WithNumber("page_number",
			mcp.Description("Page number to fetch (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of results per page (default: 20)"),
		),
		mcp.WithString("filter_workspace_names",
			mcp.Description("Comma-separated workspace names to filter by"),
		),
		mcp.WithString("filter_status",
			mcp.Description("Comma-separated run statuses to filter by"),
		),
		mcp.WithString("filter_agent_pool_names",
			mcp.Description("Comma-separated agent pool names to filter by"),
		),
	)
	s.AddTool(listInOrganizationTool, tools.WrapWithLogging("list_runs_in_organization", handleListRunsInOrganization, sc))

	detailsTool := mcp.NewTool("get_run_details",
		mcp.WithDescription("Get details for a specific run"),
		mcp.WithString("run_id",
			mcp.Required(),
			mcp.Description("ID of the run (format: run-xxxxxxxx)"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_run_details", handleGetRunDetails, sc))

	applyTool := mcp.NewTool("apply_run",
		mcp.WithDescription("Confirm and apply a run that is paused waiting for confirmation"),
		mcp.WithString("run_id",
			mcp.Required(),
			mcp.Description("ID of the run to apply (format: run-xxxxxxxx)"),
		),
		mcp.WithString("comment",
			mcp.Description("Comment to associate with the apply"),
		),
	)
	s.AddTool(applyTool, tools.WrapWithLogging("apply_run", handleApplyRun, sc))

	discardTool := mcp.NewTool("discard_run",
		mcp.WithDescription("Discard a run that is paused waiting for confirmation"),
		mcp.WithString("run_id",
			mcp.Required(),
			mcp.Description("ID of the run to discard (format: run-xxxxxxxx)"),
		),
		mcp.WithString("comment",
			mcp.Description("Comment explaining why the run was discarded"),
		),
	)
	s.AddTool(discardTool, tools.WrapWithLogging("discard_run", handleDiscardRun, sc))

	cancelTool := mcp.NewTool("cancel_run",
		mcp.WithDescription("Interrupt a run that is currently planning or applying"),
		mcp.WithString("run_id",
			mcp.Required(),
			mcp.Description("ID of the run to cancel (format: run-xxxxxxxx)"),
		),
		mcp.WithString("comment",
			mcp.Description("Comment explaining why the run was canceled"),
		),
	)
	s.AddTool(cancelTool, tools.WrapWithLogging("cancel_run", handleCancelRun, sc))

	if !sc.Config().NonDestructiveMode {
		forceCancelTool := mcp.NewTool("force_cancel_run",
			mcp.WithDescription("Forcefully cancel a run that did not respond to a regular cancel"),
			mcp.WithString("run_id",
				mcp.Required(),
				mcp.Description("ID of the run to force cancel (format: run-xxxxxxxx)"),
			),
			mcp.WithString("comment",
				mcp.Description("Comment explaining why the run was force canceled"),
			),
		)
		s.AddTool(forceCancelTool, tools.WrapWithLogging("force_cancel_run", handleForceCancelRun, sc))

		forceExecuteTool := mcp.NewTool("force_execute_run",
			mcp.WithDescription("Forcefully execute a run by canceling all prior runs in the workspace queue"),
			mcp.WithString("run_id",
				mcp.Required(),
				mcp.Description("ID of the run to force execute (format: run-xxxxxxxx)"),
			),
		)
		s.AddTool(forceExecuteTool, tools.WrapWithLogging("force_execute_run", handleForceExecuteRun, sc))
	}

	return nil
}
