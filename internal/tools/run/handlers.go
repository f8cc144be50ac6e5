package run

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleCreateRun(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	payload := tfc.NewPayload("runs", args, "workspace_id")
	tfc.AddRelationship(payload, "workspace", "workspaces", workspaceID)

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "runs",
		Method: http.MethodPost,
		Body:   payload,
	})
	return tools.Result(result)
}

func handleListRunsInWorkspace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/runs",
		Params: tfc.QueryParams(args),
	})
	return tools.Result(result)
}

func handleListRunsInOrganization(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/runs",
		Params: tfc.QueryParams(args),
	})
	return tools.Result(result)
}

func handleGetRunDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	runID, errResult := tools.RequiredString(args, "run_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "runs/" + runID,
	})
	return tools.Result(result)
}

func handleApplyRun(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return runAction(ctx, request, sc, "apply")
}

func handleDiscardRun(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return runAction(ctx, request, sc, "discard")
}

func handleCancelRun(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return runAction(ctx, request, sc, "cancel")
}

func handleForceCancelRun(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "force cancel"); errResult != nil {
		return errResult, nil
	}
	return runAction(ctx, request, sc, "force-cancel")
}

func handleForceExecuteRun(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "force execute"); errResult != nil {
		return errResult, nil
	}
	return runAction(ctx, request, sc, "force-execute")
}

// runAction posts to a run's action endpoint, attaching the optional comment
// body the actions that accept one expect.
func runAction(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, action string) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	runID, errResult := tools.RequiredString(args, "run_id")
	if errResult != nil {
		return errResult, nil
	}

	opts := tfc.RequestOptions{
		Path:   "runs/" + runID + "/actions/" + action,
		Method: http.MethodPost,
	}
	if comment := tools.OptionalString(args, "comment"); comment != "" {
		opts.Body = map[string]any{"comment": comment}
	}

	result := sc.TFCClient().Request(ctx, opts)
	return tools.Result(result)
}
