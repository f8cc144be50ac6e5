package workspace

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleListWorkspaces(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/workspaces",
		Params: tfc.QueryParams(args),
	})
	return tools.Result(result)
}

func handleGetWorkspaceDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}
	workspaceName, errResult := tools.RequiredString(args, "workspace_name")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "organizations/" + organization + "/workspaces/" + workspaceName,
	})
	return tools.Result(result)
}

func handleCreateWorkspace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}
	if _, errResult := tools.RequiredString(args, "name"); errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/workspaces",
		Method: http.MethodPost,
		Body:   tfc.NewPayload("workspaces", args, "organization"),
	})
	return tools.Result(result)
}

func handleUpdateWorkspace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}
	workspaceName, errResult := tools.RequiredString(args, "workspace_name")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/workspaces/" + workspaceName,
		Method: http.MethodPatch,
		Body:   tfc.NewPayload("workspaces", args, "organization", "workspace_name"),
	})
	return tools.Result(result)
}

func handleDeleteWorkspace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "delete"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}
	workspaceName, errResult := tools.RequiredString(args, "workspace_name")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/workspaces/" + workspaceName,
		Method: http.MethodDelete,
	})
	return tools.Result(result)
}

func handleSafeDeleteWorkspace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "delete"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}
	workspaceName, errResult := tools.RequiredString(args, "workspace_name")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/workspaces/" + workspaceName + "/actions/safe-delete",
		Method: http.MethodPost,
	})
	return tools.Result(result)
}

func handleLockWorkspace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	opts := tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/actions/lock",
		Method: http.MethodPost,
	}
	if reason := tools.OptionalString(args, "reason"); reason != "" {
		opts.Body = map[string]any{"reason": reason}
	}

	result := sc.TFCClient().Request(ctx, opts)
	return tools.Result(result)
}

func handleUnlockWorkspace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/actions/unlock",
		Method: http.MethodPost,
	})
	return tools.Result(result)
}

func handleForceUnlockWorkspace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "force unlock"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/actions/force-unlock",
		Method: http.MethodPost,
	})
	return tools.Result(result)
}

func handleGetDataRetentionPolicy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "workspaces/" + workspaceID + "/relationships/data-retention-policy",
	})
	return tools.Result(result)
}

func handleSetDataRetentionPolicy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	days, ok := tools.OptionalNumber(args, "days")
	if !ok {
		return mcp.NewToolResultError("days is required"), nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/relationships/data-retention-policy",
		Method: http.MethodPost,
		Body: map[string]any{
			"data": map[string]any{
				"type":       "data-retention-policy",
				"attributes": map[string]any{"days": int(days)},
			},
		},
	})
	return tools.Result(result)
}

func handleDeleteDataRetentionPolicy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "delete"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/relationships/data-retention-policy",
		Method: http.MethodDelete,
	})
	return tools.Result(result)
}
