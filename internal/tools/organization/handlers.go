package organization

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleListOrganizations(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations",
		Params: tfc.QueryParams(args),
	})
	return tools.Result(result)
}

func handleGetOrganizationDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "organizations/" + organization,
	})
	return tools.Result(result)
}

func handleGetOrganizationEntitlements(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "organizations/" + organization + "/entitlement-set",
	})
	return tools.Result(result)
}

func handleCreateOrganization(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	if _, errResult := tools.RequiredString(args, "name"); errResult != nil {
		return errResult, nil
	}
	if _, errResult := tools.RequiredString(args, "email"); errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations",
		Method: http.MethodPost,
		Body:   tfc.NewPayload("organizations", args),
	})
	return tools.Result(result)
}

func handleUpdateOrganization(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization,
		Method: http.MethodPatch,
		Body:   tfc.NewPayload("organizations", args, "organization"),
	})
	return tools.Result(result)
}

func handleDeleteOrganization(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "delete"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization,
		Method: http.MethodDelete,
	})
	return tools.Result(result)
}
