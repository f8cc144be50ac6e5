package apply

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleGetApplyDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	applyID, errResult := tools.RequiredString(args, "apply_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "applies/" + applyID,
	})
	return tools.Result(result)
}

func handleGetErroredState(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	applyID, errResult := tools.RequiredString(args, "apply_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "applies/" + applyID + "/errored-state",
	})
	return tools.Result(result)
}

func handleGetApplyLogs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	applyID, errResult := tools.RequiredString(args, "apply_id")
	if errResult != nil {
		return errResult, nil
	}

	details := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:        "applies/" + applyID,
		RawResponse: true,
	})
	if _, failed := details["error"]; failed {
		return tools.Result(details)
	}

	logURL, ok := tools.ExtractString(details, "data.attributes.log-read-url")
	if !ok {
		return mcp.NewToolResultError("Apply has no log-read-url; logs may not be available yet"), nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:        logURL,
		AbsoluteURL: true,
		AcceptText:  true,
	})
	return tools.Result(result)
}
