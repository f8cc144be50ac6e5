package account

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterAccountTools registers all account tools with the MCP server.
func RegisterAccountTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	detailsTool := mcp.NewTool("get_account_details",
		mcp.WithDescription("Get details for the account associated with the configured API token"),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_account_details", handleGetAccountDetails, sc))

	return nil
}
