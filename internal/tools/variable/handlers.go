package variable

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleListWorkspaceVariables(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "workspaces/" + workspaceID + "/vars",
	})
	return tools.Result(result)
}

func handleCreateWorkspaceVariable(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	if _, errResult := tools.RequiredString(args, "key"); errResult != nil {
		return errResult, nil
	}
	if _, errResult := tools.RequiredString(args, "category"); errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/vars",
		Method: http.MethodPost,
		Body:   tfc.NewPayload("vars", args, "workspace_id"),
	})
	return tools.Result(result)
}

func handleUpdateWorkspaceVariable(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	variableID, errResult := tools.RequiredString(args, "variable_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/vars/" + variableID,
		Method: http.MethodPatch,
		Body:   tfc.NewPayload("vars", args, "workspace_id", "variable_id"),
	})
	return tools.Result(result)
}

func handleDeleteWorkspaceVariable(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "delete"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	variableID, errResult := tools.RequiredString(args, "variable_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/vars/" + variableID,
		Method: http.MethodDelete,
	})
	return tools.Result(result)
}
