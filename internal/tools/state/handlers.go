package state

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleListStateVersions(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	if _, errResult := tools.RequiredString(args, "filter_organization_name"); errResult != nil {
		return errResult, nil
	}
	if _, errResult := tools.RequiredString(args, "filter_workspace_name"); errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "state-versions",
		Params: tfc.QueryParams(args),
	})
	return tools.Result(result)
}

func handleGetCurrentStateVersion(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "workspaces/" + workspaceID + "/current-state-version",
	})
	return tools.Result(result)
}

func handleGetStateVersionDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	stateVersionID, errResult := tools.RequiredString(args, "state_version_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "state-versions/" + stateVersionID,
	})
	return tools.Result(result)
}

func handleCreateStateVersion(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := tools.RequiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	if _, ok := tools.OptionalNumber(args, "serial"); !ok {
		return mcp.NewToolResultError("serial is required"), nil
	}
	if _, errResult := tools.RequiredString(args, "md5"); errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "workspaces/" + workspaceID + "/state-versions",
		Method: http.MethodPost,
		Body:   tfc.NewPayload("state-versions", args, "workspace_id"),
	})
	return tools.Result(result)
}

func handleDownloadStateFile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	stateVersionID, errResult := tools.RequiredString(args, "state_version_id")
	if errResult != nil {
		return errResult, nil
	}
	jsonFormat, _ := tools.OptionalBool(args, "json_format")

	details := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:        "state-versions/" + stateVersionID,
		RawResponse: true,
	})
	if _, failed := details["error"]; failed {
		return tools.Result(details)
	}

	urlAttribute := "data.attributes.hosted-state-download-url"
	if jsonFormat {
		urlAttribute = "data.attributes.hosted-json-state-download-url"
	}
	downloadURL, ok := tools.ExtractString(details, urlAttribute)
	if !ok {
		return mcp.NewToolResultError("State version has no download URL for the requested format"), nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:        downloadURL,
		AbsoluteURL: true,
		AcceptText:  true,
	})
	return tools.Result(result)
}

func handleListStateVersionOutputs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	stateVersionID, errResult := tools.RequiredString(args, "state_version_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "state-versions/" + stateVersionID + "/outputs",
		Params: tfc.QueryParams(args),
	})
	return tools.Result(result)
}

func handleGetStateVersionOutput(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	outputID, errResult := tools.RequiredString(args, "state_version_output_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "state-version-outputs/" + outputID,
	})
	return tools.Result(result)
}
