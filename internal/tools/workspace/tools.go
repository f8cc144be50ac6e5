// Package workspace implements MCP tools for the Terraform Cloud workspaces API.
package workspace

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterWorkspaceTools registers all workspace tools with the MCP server.
// Destructive tools are only registered when non-destructive mode is disabled.
func RegisterWorkspaceTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("list_workspaces",
		mcp.WithDescription("List workspaces in an organization"),
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
		mcp.WithString("search",
			mcp.Description("Substring to search workspace names for"),
		),
		mcp.WithString("filter_tagged_keys",
			mcp.Description("Filter workspaces by tag key"),
		),
	)
	s.AddTool(listTool, tools.WrapWithLogging("list_workspaces", handleListWorkspaces, sc))

	detailsTool := mcp.NewTool("get_workspace_details",
		mcp.WithDescription("Get details for a specific workspace"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization"),
		),
		mcp.WithString("workspace_name",
			mcp.Required(),
			mcp.Description("Name of the workspace"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_workspace_details", handleGetWorkspaceDetails, sc))

	createTool := mcp.NewTool("create_workspace",
		mcp.WithDescription("Create a new workspace in an organization"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the new workspace"),
		),
		mcp.WithString("description",
			mcp.Description("Description of the workspace"),
		),
		mcp.WithString("terraform_version",
			mcp.Description("Terraform version to use (default: latest)"),
		),
		mcp.WithString("working_directory",
			mcp.Description("Relative path that Terraform runs execute in"),
		),
		mcp.WithBoolean("auto_apply",
			mcp.Description("Automatically apply successful plans (default: false)"),
		),
		mcp.WithString("execution_mode",
			mcp.Description("Execution mode: 'remote', 'local', or 'agent'"),
			mcp.Enum("remote", "local", "agent"),
		),
	)
	s.AddTool(createTool, tools.WrapWithLogging("create_workspace", handleCreateWorkspace, sc))

	updateTool := mcp.NewTool("update_workspace",
		mcp.WithDescription("Update an existing workspace's settings"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization"),
		),
		mcp.WithString("workspace_name",
			mcp.Required(),
			mcp.Description("Name of the workspace to update"),
		),
		mcp.WithString("name",
			mcp.Description("New name for the workspace"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the workspace"),
		),
		mcp.WithString("terraform_version",
			mcp.Description("Terraform version to use"),
		),
		mcp.WithBoolean("auto_apply",
			mcp.Description("Automatically apply successful plans"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithLogging("update_workspace", handleUpdateWorkspace, sc))

	lockTool := mcp.NewTool("lock_workspace",
		mcp.WithDescription("Lock a workspace to prevent new runs from starting"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace to lock (format: ws-xxxxxxxx)"),
		),
		mcp.WithString("reason",
			mcp.Description("Reason for locking the workspace"),
		),
	)
	s.AddTool(lockTool, tools.WrapWithLogging("lock_workspace", handleLockWorkspace, sc))

	unlockTool := mcp.NewTool("unlock_workspace",
		mcp.WithDescription("Unlock a workspace to allow new runs"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace to unlock (format: ws-xxxxxxxx)"),
		),
	)
	s.AddTool(unlockTool, tools.WrapWithLogging("unlock_workspace", handleUnlockWorkspace, sc))

	getRetentionTool := mcp.NewTool("get_data_retention_policy",
		mcp.WithDescription("Get the data retention policy for a workspace"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
		),
	)
	s.AddTool(getRetentionTool, tools.WrapWithLogging("get_data_retention_policy", handleGetDataRetentionPolicy, sc))

	setRetentionTool := mcp.NewTool("set_data_retention_policy",
		mcp.WithDescription("Set the data retention policy for a workspace"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
		),
		mcp.WithNumber("days",
			mcp.Required(),
			mcp.Description("Number of days to retain state versions and configuration versions"),
		),
	)
	s.AddTool(setRetentionTool, tools.WrapWithLogging("set_data_retention_policy", handleSetDataRetentionPolicy, sc))

	if !sc.Config().NonDestructiveMode {
		forceUnlockTool := mcp.NewTool("force_unlock_workspace",
			mcp.WithDescription("Force unlock a workspace locked by another user or a stuck run"),
			mcp.WithString("workspace_id",
				mcp.Required(),
				mcp.Description("ID of the workspace to force unlock (format: ws-xxxxxxxx)"),
			),
		)
		s.AddTool(forceUnlockTool, tools.WrapWithLogging("force_unlock_workspace", handleForceUnlockWorkspace, sc))

		deleteTool := mcp.NewTool("delete_workspace",
			mcp.WithDescription("Delete a workspace and all its content. This action cannot be undone"),
			mcp.WithString("organization",
				mcp.Required(),
				mcp.Description("Name of the organization"),
			),
			mcp.WithString("workspace_name",
				mcp.Required(),
				mcp.Description("Name of the workspace to delete"),
			),
		)
		s.AddTool(deleteTool, tools.WrapWithLogging("delete_workspace", handleDeleteWorkspace, sc))

		safeDeleteTool := mcp.NewTool("safe_delete_workspace",
			mcp.WithDescription("Delete a workspace only if it is not managing any resources"),
			mcp.WithString("organization",
				mcp.Required(),
				mcp.Description("Name of the organization"),
			),
			mcp.WithString("workspace_name",
				mcp.Required(),
				mcp.Description("Name of the workspace to delete"),
			),
		)
		s.AddTool(safeDeleteTool, tools.WrapWithLogging("safe_delete_workspace", handleSafeDeleteWorkspace, sc))

		deleteRetentionTool := mcp.NewTool("delete_data_retention_policy",
			mcp.WithDescription("Delete the data retention policy from a workspace, reverting to the organization default"),
			mcp.WithString("workspace_id",
				mcp.Required(),
				mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
			),
		)
		s.AddTool(deleteRetentionTool, tools.WrapWithLogging("delete_data_retention_policy", handleDeleteDataRetentionPolicy, sc))
	}

	return nil
}
