// Package project implements MCP tools for the Terraform Cloud projects API.
package project

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterProjectTools registers all project tools with the MCP server.
// Destructive tools are only registered when non-destructive mode is disabled.
func RegisterProjectTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("list_projects",
		mcp.WithDescription("List projects in an organization"),
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
		mcp.WithString("q",
			mcp.Description("Search query matching project names"),
		),
		mcp.WithString("filter_names",
			mcp.Description("Comma-separated list of project names to filter by"),
		),
	)
	s.AddTool(listTool, tools.WrapWithLogging("list_projects", handleListProjects, sc))

	detailsTool := mcp.NewTool("get_project_details",
		mcp.WithDescription("Get details for a specific project"),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("ID of the project (format: prj-xxxxxxxx)"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_project_details", handleGetProjectDetails, sc))

	createTool := mcp.NewTool("create_project",
		mcp.WithDescription("Create a new project in an organization"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the new project"),
		),
		mcp.WithString("description",
			mcp.Description("Description of the project"),
		),
		mcp.WithNumber("auto_destroy_activity_duration",
			mcp.Description("Days of inactivity after which workspace resources are auto-destroyed"),
		),
	)
	s.AddTool(createTool, tools.WrapWithLogging("create_project", handleCreateProject, sc))

	updateTool := mcp.NewTool("update_project",
		mcp.WithDescription("Update an existing project"),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("ID of the project to update (format: prj-xxxxxxxx)"),
		),
		mcp.WithString("name",
			mcp.Description("New name for the project"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the project"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithLogging("update_project", handleUpdateProject, sc))

	moveTool := mcp.NewTool("move_workspaces_to_project",
		mcp.WithDescription("Move workspaces into a project"),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("ID of the destination project (format: prj-xxxxxxxx)"),
		),
		mcp.WithArray("workspace_ids",
			mcp.Required(),
			mcp.Description("IDs of the workspaces to move (format: ws-xxxxxxxx)"),
		),
	)
	s.AddTool(moveTool, tools.WrapWithLogging("move_workspaces_to_project", handleMoveWorkspacesToProject, sc))

	listTagsTool := mcp.NewTool("list_project_tag_bindings",
		mcp.WithDescription("List tags bound to a project. Workspaces in the project inherit these tags"),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("ID of the project (format: prj-xxxxxxxx)"),
		),
	)
	s.AddTool(listTagsTool, tools.WrapWithLogging("list_project_tag_bindings", handleListProjectTagBindings, sc))

	tagsTool := mcp.NewTool("add_update_project_tag_bindings",
		mcp.WithDescription("Add or update tag bindings on a project. Existing tags are kept"),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("ID of the project (format: prj-xxxxxxxx)"),
		),
		mcp.WithArray("tag_bindings",
			mcp.Required(),
			mcp.Description("Tag bindings to add or update, each an object with 'key' and 'value'"),
		),
	)
	s.AddTool(tagsTool, tools.WrapWithLogging("add_update_project_tag_bindings", handleAddUpdateProjectTagBindings, sc))

	if !sc.Config().NonDestructiveMode {
		deleteTool := mcp.NewTool("delete_project",
			mcp.WithDescription("Delete a project. The project must be empty"),
			mcp.WithString("project_id",
				mcp.Required(),
				mcp.Description("ID of the project to delete (format: prj-xxxxxxxx)"),
			),
		)
		s.AddTool(deleteTool, tools.WrapWithLogging("delete_project", handleDeleteProject, sc))
	}

	return nil
}
