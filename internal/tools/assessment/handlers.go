package assessment

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools"
)

func handleGetAssessmentResultDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	assessmentResultID, errResult := tools.RequiredString(args, "assessment_result_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path: "assessment-results/" + assessmentResultID,
	})
	return tools.Result(result)
}

func handleGetAssessmentJSONOutput(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return assessmentSubresource(ctx, request, sc, "json-output", false)
}

func handleGetAssessmentJSONSchema(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return assessmentSubresource(ctx, request, sc, "json-schema", false)
}

func handleGetAssessmentLogOutput(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return assessmentSubresource(ctx, request, sc, "log-output", true)
}

// assessmentSubresource fetches one of an assessment result's derived
// artifacts. The log output is plain text; the JSON artifacts decode as
// usual.
func assessmentSubresource(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, subresource string, acceptText bool) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	assessmentResultID, errResult := tools.RequiredString(args, "assessment_result_id")
	if errResult != nil {
		return errResult, nil
	}

	result := sc.TFCClient().Request(ctx, tfc.RequestOptions{
		Path:       "assessment-results/" + assessmentResultID + "/" + subresource,
		AcceptText: acceptText,
	})
	return tools.Result(result)
}
