package variable

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleListVariableSets(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/varsets",
		Params: tfc.QueryParams(args),
	})
	return tools.Result(result)
}

func handleGetVariableSet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	varsetID, errResult := tools.RequiredString(args, "varset_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "varsets/" + varsetID,
	})
	return tools.Result(result)
}

func handleCreateVariableSet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	organization, errResult := tools.RequiredString(args, "organization")
	if errResult != nil {
		return errResult, nil
	}
	if _, errResult := tools.RequiredString(args, "name"); errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "organizations/" + organization + "/varsets",
		Method: http.MethodPost,
		Body:   tfc.NewPayload("varsets", args, "organization"),
	})
	return tools.Result(result)
}

func handleUpdateVariableSet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	varsetID, errResult := tools.RequiredString(args, "varset_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "varsets/" + varsetID,
		Method: http.MethodPatch,
		Body:   tfc.NewPayload("varsets", args, "varset_id"),
	})
	return tools.Result(result)
}

func handleDeleteVariableSet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "delete"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	varsetID, errResult := tools.RequiredString(args, "varset_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "varsets/" + varsetID,
		Method: http.MethodDelete,
	})
	return tools.Result(result)
}

// varsetRelationship issues the assign/unassign call for a variable set.
// Assignment is a POST, unassignment a DELETE; both name the target
// resources in the request body.
func varsetRelationship(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, method, argName, resourceType string) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	varsetID, errResult := tools.RequiredString(args, "varset_id")
	if errResult != nil {
		return errResult, nil
	}
	refs, errResult := tools.ResourceRefs(args, argName, resourceType)
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "varsets/" + varsetID + "/relationships/" + resourceType,
		Method: method,
		Body:   map[string]any{"data": refs},
	})
	return tools.Result(result)
}

func handleAssignVariableSetToWorkspaces(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return varsetRelationship(ctx, request, sc, http.MethodPost, "workspace_ids", "workspaces")
}

func handleUnassignVariableSetFromWorkspaces(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return varsetRelationship(ctx, request, sc, http.MethodDelete, "workspace_ids", "workspaces")
}

func handleAssignVariableSetToProjects(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return varsetRelationship(ctx, request, sc, http.MethodPost, "project_ids", "projects")
}

func handleUnassignVariableSetFromProjects(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return varsetRelationship(ctx, request, sc, http.MethodDelete, "project_ids", "projects")
}

func handleListVariablesInVariableSet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	varsetID, errResult := tools.RequiredString(args, "varset_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "varsets/" + varsetID + "/relationships/vars",
	})
	return tools.Result(result)
}

func handleCreateVariableInVariableSet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	varsetID, errResult := tools.RequiredString(args, "varset_id")
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
		Path:   "varsets/" + varsetID + "/relationships/vars",
		Method: http.MethodPost,
		Body:   tfc.NewPayload("vars", args, "varset_id"),
	})
	return tools.Result(result)
}

func handleUpdateVariableInVariableSet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	varsetID, errResult := tools.RequiredString(args, "varset_id")
	if errResult != nil {
		return errResult, nil
	}
	variableID, errResult := tools.RequiredString(args, "variable_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "varsets/" + varsetID + "/relationships/vars/" + variableID,
		Method: http.MethodPatch,
		Body:   tfc.NewPayload("vars", args, "varset_id", "variable_id"),
	})
	return tools.Result(result)
}

func handleDeleteVariableFromVariableSet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if errResult := tools.CheckMutatingOperation(sc, "delete"); errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()

	varsetID, errResult := tools.RequiredString(args, "varset_id")
	if errResult != nil {
		return errResult, nil
	}
	variableID, errResult := tools.RequiredString(args, "variable_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:   "varsets/" + varsetID + "/relationships/vars/" + variableID,
		Method: http.MethodDelete,
	})
	return tools.Result(result)
}
