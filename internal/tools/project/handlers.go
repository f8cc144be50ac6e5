package project

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleListProjects(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/projects",
		Params: tfc.QueryParams(args),
	})
	return tools.Result(result)
}

func handleGetProjectDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	projectID, errResult := tools.RequiredString(args, "project_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "projects/" + projectID,
	})
	return tools.Result(result)
}

func handleCreateProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}
	if _, errResult := tools.RequiredString(args, "name"); errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/projects",
		Method: http.MethodPost,
		Body:   tfc.NewPayload("projects", args, "organization"),
	})
	return tools.Result(result)
}

func handleUpdateProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	projectID, errResult := tools.RequiredString(args, "project_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "projects/" + projectID,
		Method: http.MethodPatch,
		Body:   tfc.NewPayload("projects", args, "project_id"),
	})
	return tools.Result(result)
}

func handleMoveWorkspacesToProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	projectID, errResult := tools.RequiredString(args, "project_id")
	if errResult != nil {
		return errResult, nil
	}

	workspaces, errResult := tools.ResourceRefs(args, "workspace_ids", "workspaces")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "projects/" + projectID + "/relationships/workspaces",
		Method: http.MethodPatch,
		Body:   map[string]any{"data": workspaces},
	})
	return tools.Result(result)
}

func handleListProjectTagBindings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	projectID, errResult := tools.RequiredString(args, "project_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "projects/" + projectID + "/tag-bindings",
	})
	return tools.Result(result)
}

func handleAddUpdateProjectTagBindings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	projectID, errResult := tools.RequiredString(args, "project_id")
	if errResult != nil {
		return errResult, nil
	}

	rawBindings, ok := args["tag_bindings"].([]any)
	if !ok || len(rawBindings) == 0 {
		return mcp.NewToolResultError("tag_bindings is required"), nil
	}

	bindings := make([]map[string]any, 0, len(rawBindings))
	for _, raw := range rawBindings {
		binding, ok := raw.(map[string]any)
		if !ok {
			return mcp.NewToolResultError("tag_bindings must be an array of {key, value} objects"), nil
		}
		key, _ := binding["key"].(string)
		if key == "" {
			return mcp.NewToolResultError("every tag binding needs a non-empty key"), nil
		}
		value, _ := binding["value"].(string)
		bindings = append(bindings, map[string]any{
			"type":       "tag-bindings",
			"attributes": map[string]any{"key": key, "value": value},
		})
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "projects/" + projectID + "/tag-bindings",
		Method: http.MethodPatch,
		Body:   map[string]any{"data": bindings},
	})
	return tools.Result(result)
}

func handleDeleteProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "delete"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	projectID, errResult := tools.RequiredString(args, "project_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "projects/" + projectID,
		Method: http.MethodDelete,
	})
	return tools.Result(result)
}
