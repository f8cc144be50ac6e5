// Package organization implements MCP tools for the Terraform Cloud
// organizations API.
package organization

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterOrganizationTools registers all organization tools with the MCP server.
// Destructive tools are only registered when non-destructive mode is disabled.
func RegisterOrganizationTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("list_organizations",
		mcp.WithDescription("List organizations the configured token can access"),
		mcp.WithNumber("page_number",
			mcp.Description("Page number to fetch (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of results per page (default: 20)"),
		),
		mcp.WithString("q",
			mcp.Description("Search query matching organization name and email"),
		),
		mcp.WithString("query_email",
			mcp.Description("Search query matching organization email only"),
		),
		mcp.WithString("query_name",
			mcp.Description("Search query matching organization name only"),
		),
	)
	s.AddTool(listTool, tools.WrapWithLogging("list_organizations", handleListOrganizations, sc))

	detailsTool := mcp.NewTool("get_organization_details",
		mcp.WithDescription("Get details for a specific organization"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_organization_details", handleGetOrganizationDetails, sc))

	entitlementsTool := mcp.NewTool("get_organization_entitlements",
		mcp.WithDescription("Get the entitlement set for an organization, showing available features"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization"),
		),
	)
	s.AddTool(entitlementsTool, tools.WrapWithLogging("get_organization_entitlements", handleGetOrganizationEntitlements, sc))

	createTool := mcp.NewTool("create_organization",
		mcp.WithDescription("Create a new organization"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the new organization"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Admin email address for the organization"),
		),
		mcp.WithString("collaborator_auth_policy",
			mcp.Description("Authentication policy: 'password' or 'two_factor_mandatory'"),
		),
		mcp.WithBoolean("cost_estimation_enabled",
			mcp.Description("Whether cost estimation is enabled for all workspaces"),
		),
		mcp.WithString("session_timeout",
			mcp.Description("Session timeout after inactivity in minutes"),
		),
	)
	s.AddTool(createTool, tools.WrapWithLogging("create_organization", handleCreateOrganization, sc))

	updateTool := mcp.NewTool("update_organization",
		mcp.WithDescription("Update an existing organization's settings"),
		mcp.WithString("organization",
			mcp.Required(),
			mcp.Description("Name of the organization to update"),
		),
		mcp.WithString("email",
			mcp.Description("New admin email address"),
		),
		mcp.WithString("name",
			mcp.Description("New name for the organization"),
		),
		mcp.WithBoolean("cost_estimation_enabled",
			mcp.Description("Whether cost estimation is enabled for all workspaces"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithLogging("update_organization", handleUpdateOrganization, sc))

	if !sc.Config().NonDestructiveMode {
		deleteTool := mcp.NewTool("delete_organization",
			mcp.WithDescription("Delete an organization and everything it contains. This action cannot be undone"),
			mcp.WithString("organization",
				mcp.Required(),
				mcp.Description("Name of the organization to delete"),
			),
		)
		s.AddTool(deleteTool, tools.WrapWithLogging("delete_organization", handleDeleteOrganization, sc))
	}

	return nil
}
