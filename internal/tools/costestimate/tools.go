// Package costestimate implements MCP tools for the Terraform Cloud cost
// estimates API.
package costestimate

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

// RegisterCostEstimateTools registers all cost estimate tools with the MCP
// server.
func RegisterCostEstimateTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	detailsTool := mcp.NewTool("get_cost_estimate_details",
		mcp.WithDescription("Get details for a specific cost estimate"),
		mcp.WithString("cost_estimate_id",
			mcp.Required(),
			mcp.Description("ID of the cost estimate (format: ce-xxxxxxxx)"),
		),
	)
	s.AddTool(detailsTool, tools.WrapWithLogging("get_cost_estimate_details", handleGetCostEstimateDetails, sc))

	return nil
}

func handleGetCostEstimateDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	costEstimateID, errResult := tools.RequiredString(args, "cost_estimate_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "cost-estimates/" + costEstimateID,
	})
	return tools.Result(result)
}
