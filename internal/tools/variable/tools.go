// Package variable implements MCP tools for the Terraform Cloud workspace
// variables and variable sets APIs.
package variable

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterVariableTools registers all workspace variable and variable set
// tools with the MCP server. Destructive tools are only registered when
// non-destructive mode is disabled.
func RegisterVariableTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerVariableSetTools(s, sc); err != nil {
		return err
	}

	listTool := mcp.NewTool("list_workspace_variables",
		mcp.WithDescription("List variables defined on a workspace. Sensitive values are never returned"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
		),
	)
	s.AddTool(listTool, tools.WrapWithLogging("list_workspace_variables", handleListWorkspaceVariables, sc))

	createTool := mcp.NewTool("create_workspace_variable",
		mcp.WithDescription("Create a variable on a workspace"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
		),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Name of the variable"),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Variable category: 'terraform' or 'env'"),
			mcp.Enum("terraform", "env"),
		),
		mcp.WithString("value",
			mcp.Description("Value of the variable"),
		),
		mcp.WithString("description",
			mcp.Description("Description of the variable"),
		),
		mcp.WithBoolean("hcl",
			mcp.Description("Parse the value as HCL (terraform category only)"),
		),
		mcp.WithBoolean("sensitive",
			mcp.Description("Mark the value as sensitive so it is write-only"),
		),
	)
	s.AddTool(createTool, tools.WrapWithLogging("create_workspace_variable", handleCreateWorkspaceVariable, sc))

	updateTool := mcp.NewTool("update_workspace_variable",
		mcp.WithDescription("Update an existing workspace variable"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
		),
		mcp.WithString("variable_id",
			mcp.Required(),
			mcp.Description("ID of the variable to update (format: var-xxxxxxxx)"),
		),
		mcp.WithString("key",
			mcp.Description("New name for the variable"),
		),
		mcp.WithString("value",
			mcp.Description("New value for the variable"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the variable"),
		),
		mcp.WithBoolean("hcl",
			mcp.Description("Parse the value as HCL (terraform category only)"),
		),
		mcp.WithBoolean("sensitive",
			mcp.Description("Mark the value as sensitive so it is write-only"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithLogging("update_workspace_variable", handleUpdateWorkspaceVariable, sc))

	if !sc.Config().NonDestructiveMode {
		deleteTool := mcp.NewTool("delete_workspace_variable",
			mcp.WithDescription("Delete a variable from a workspace"),
			mcp.WithString("workspace_id",
				mcp.Required(),
				mcp.Description("ID of the workspace (format: ws-xxxxxxxx)"),
			),
			mcp.WithString("variable_id",
				mcp.Required(),
				mcp.Description("ID of the variable to delete (format: var-xxxxxxxx)"),
			),
		)
		s.AddTool(deleteTool, tools.WrapWithLogging("delete_workspace_variable", handleDeleteWorkspaceVariable, sc))
	}

	return nil
}
