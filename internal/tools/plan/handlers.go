package plan

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleGetPlanDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	planID, errResult := tools.RequiredString(args, "plan_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "plans/" + planID,
	})
	return tools.Result(result)
}

func handleGetPlanJSONOutput(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	planID, errResult := tools.RequiredString(args, "plan_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "plans/" + planID + "/json-output",
	})
	return tools.Result(result)
}

func handleGetRunPlanJSONOutput(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	runID, errResult := tools.RequiredString(args, "run_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "runs/" + runID + "/plan/json-output",
	})
	return tools.Result(result)
}

func handleGetPlanLogs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	planID, errResult := tools.RequiredString(args, "plan_id")
	if errResult != nil {
		return errResult, nil
	}

	details := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:        "plans/" + planID,
		RawResponse: true,
	})
	if _, failed := details["error"]; failed {
		return tools.Result(details)
	}

	logURL, ok := tools.ExtractString(details, "data.attributes.log-read-url")
	if !ok {
		return mcp.NewToolResultError("Plan has no log-read-url; logs may not be available yet"), nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:        logURL,
		AbsoluteURL: true,
		AcceptText:  true,
	})
	return tools.Result(result)
}
