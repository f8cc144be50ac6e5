package variable

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// registerVariableSetTools registers the variable set tools. Variable sets
// share variables across workspaces and projects; their variables use the
// same attributes as workspace variables.
func registerVariableSetTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("list_variable_sets",
		mcp.WithDescription("List variable sets in an organization"),
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
	)
	s.AddTool(listTool, tools.WrapWithLogging("list_variable_sets", handleListVariableSets, sc))

	detailsTool := mcp.NewTool("get_variable_set",
		mcp.WithDescription("Get details for a variable set, including its variables and assignments"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_variable_set", handleGetVariableSet, sc))

	createTool := mcp.NewTool("create_variable_set",
		mcp.WithDescription("Create a variable set in an organization"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the variable set"),
		),
		mcp.WithString("description",
			mcp.Description("Description of the variable set"),
		),
		mcp.WithBoolean("global",
			mcp.Description("Apply the variable set to every workspace in the organization"),
		),
		mcp.WithBoolean("priority",
			mcp.Description("Let the set's variables override workspace variables"),
		),
	)
	s.AddTool(createTool, tools.WrapWithLogging("create_variable_set", handleCreateVariableSet, sc))

	updateTool := mcp.NewTool("update_variable_set",
		mcp.WithDescription("Update an existing variable set"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set to update (format: varset-xxxxxxxx)"),
		),
		mcp.WithString("name",
			mcp.Description("New name for the variable set"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the variable set"),
		),
		mcp.WithBoolean("global",
			mcp.Description("Apply the variable set to every workspace in the organization"),
		),
		mcp.WithBoolean("priority",
			mcp.Description("Let the set's variables override workspace variables"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithLogging("update_variable_set", handleUpdateVariableSet, sc))

	assignWorkspacesTool := mcp.NewTool("assign_variable_set_to_workspaces",
		mcp.WithDescription("Assign a variable set to one or more workspaces"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
		),
		mcp.WithArray("workspace_ids",
			mcp.Required(),
			mcp.Description("IDs of the workspaces (format: ws-xxxxxxxx)"),
		),
	)
	s.AddTool(assignWorkspacesTool, tools.WrapWithLogging("assign_variable_set_to_workspaces", handleAssignVariableSetToWorkspaces, sc))

	unassignWorkspacesTool := mcp.NewTool("unassign_variable_set_from_workspaces",
		mcp.WithDescription("Remove a variable set from one or more workspaces"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
		),
		mcp.WithArray("workspace_ids",
			mcp.Required(),
			mcp.Description("IDs of the workspaces (format: ws-xxxxxxxx)"),
		),
	)
	s.AddTool(unassignWorkspacesTool, tools.WrapWithLogging("unassign_variable_set_from_workspaces", handleUnassignVariableSetFromWorkspaces, sc))

	assignProjectsTool := mcp.NewTool("assign_variable_set_to_projects",
		mcp.WithDescription("Assign a variable set to one or more projects"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
		),
		mcp.WithArray("project_ids",
			mcp.Required(),
			mcp.Description("IDs of the projects (format: prj-xxxxxxxx)"),
		),
	)
	s.AddTool(assignProjectsTool, tools.WrapWithLogging("assign_variable_set_to_projects", handleAssignVariableSetToProjects, sc))

	unassignProjectsTool := mcp.NewTool("unassign_variable_set_from_projects",
		mcp.WithDescription("Remove a variable set from one or more projects"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
		),
		mcp.WithArray("project_ids",
			mcp.Required(),
			mcp.Description("IDs of the projects (format: prj-xxxxxxxx)"),
		),
	)
	s.AddTool(unassignProjectsTool, tools.WrapWithLogging("unassign_variable_set_from_projects", handleUnassignVariableSetFromProjects, sc))

	listVarsTool := mcp.NewTool("list_variables_in_variable_set",
		mcp.WithDescription("List the variables in a variable set. Sensitive values are never returned"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
		),
	)
	s.AddTool(listVarsTool, tools.WrapWithLogging("list_variables_in_variable_set", handleListVariablesInVariableSet, sc))

	createVarTool := mcp.NewTool("create_variable_in_variable_set",
		mcp.WithDescription("Create a variable in a variable set"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
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
	s.AddTool(createVarTool, tools.WrapWithLogging("create_variable_in_variable_set", handleCreateVariableInVariableSet, sc))

	updateVarTool := mcp.NewTool("update_variable_in_variable_set",
		mcp.WithDescription("Update an existing variable in a variable set"),
		mcp.WithString("varset_id",
			mcp.Required(),
			mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
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
	s.AddTool(updateVarTool, tools.WrapWithLogging("update_variable_in_variable_set", handleUpdateVariableInVariableSet, sc))

	if !sc.Config().NonDestructiveMode {
		deleteTool := mcp.NewTool("delete_variable_set",
			mcp.WithDescription("Delete a variable set and all its variables. The set is unassigned everywhere first"),
			mcp.WithString("varset_id",
				mcp.Required(),
				mcp.Description("ID of the variable set to delete (format: varset-xxxxxxxx)"),
			),
		)
		s.AddTool(deleteTool, tools.WrapWithLogging("delete_variable_set", handleDeleteVariableSet, sc))

		deleteVarTool := mcp.NewTool("delete_variable_from_variable_set",
			mcp.WithDescription("Delete a variable from a variable set"),
			mcp.WithString("varset_id",
				mcp.Required(),
				mcp.Description("ID of the variable set (format: varset-xxxxxxxx)"),
			),
			mcp.WithString("variable_id",
				mcp.Required(),
				mcp.Description("ID of the variable to delete (format: var-xxxxxxxx)"),
			),
		)
		s.AddTool(deleteVarTool, tools.WrapWithLogging("delete_variable_from_variable_set", handleDeleteVariableFromVariableSet, sc))
	}

	return nil
}
