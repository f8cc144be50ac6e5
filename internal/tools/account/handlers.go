package account

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// handleGetAccountDetails fetches the current user's account details.
func handleGetAccountDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "account/details",
	})
	return tools.Result(result)
}
