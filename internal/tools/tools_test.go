package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
)

func newTestServerContext(t *testing.T, opts ...server.Option) *server.ServerContext {
	t.Helper()
	client := tfc.NewClient(tfc.Config{Token: "test-token"}, nil)
	allOpts := append([]server.Option{server.WithTFCClient(client)}, opts...)
	sc, err := server.NewServerContext(context.Background(), allOpts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestResultText(t *testing.T) {
	result, err := Result(map[string]any{"data": map[string]any{"id": "ws-1"}})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), `"ws-1"`)
}

func TestResultError(t *testing.T) {
	result, err := Result(map[string]any{"error": "API request failed: 404"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "API request failed: 404")
}

func TestRequiredString(t *testing.T) {
	value, errResult := RequiredString(map[string]any{"workspace_id": "ws-1"}, "workspace_id")
	assert.Nil(t, errResult)
	assert.Equal(t, "ws-1", value)

	_, errResult = RequiredString(map[string]any{}, "workspace_id")
	require.NotNil(t, errResult)
	assert.True(t, errResult.IsError)
	assert.Contains(t, resultText(t, errResult), "workspace_id is required")

	_, errResult = RequiredString(map[string]any{"workspace_id": ""}, "workspace_id")
	assert.NotNil(t, errResult)
}

func TestOptionalArgs(t *testing.T) {
	args := map[string]any{
		"search": "prod",
		"locked": false,
		"page":   float64(3),
	}

	assert.Equal(t, "prod", OptionalString(args, "search"))
	assert.Equal(t, "", OptionalString(args, "missing"))

	locked, ok := OptionalBool(args, "locked")
	assert.True(t, ok)
	assert.False(t, locked)
	_, ok = OptionalBool(args, "missing")
	assert.False(t, ok)

	page, ok := OptionalNumber(args, "page")
	assert.True(t, ok)
	assert.Equal(t, float64(3), page)
}

func TestFields(t *testing.T) {
	args := map[string]any{
		"page_number":   float64(2),
		"filter_status": "applied",
		"unrelated":     "x",
	}

	fields := Fields(args, "page_number", "page_size", "filter_status")
	assert.Equal(t, map[string]any{
		"page_number":   float64(2),
		"filter_status": "applied",
	}, fields)
}

func TestResourceRefs(t *testing.T) {
	refs, errResult := ResourceRefs(map[string]any{
		"workspace_ids": []any{"ws-one", "ws-two"},
	}, "workspace_ids", "workspaces")
	require.Nil(t, errResult)
	assert.Equal(t, []map[string]any{
		{"type": "workspaces", "id": "ws-one"},
		{"type": "workspaces", "id": "ws-two"},
	}, refs)
}

func TestResourceRefsErrors(t *testing.T) {
	_, errResult := ResourceRefs(map[string]any{}, "workspace_ids", "workspaces")
	require.NotNil(t, errResult)
	assert.Contains(t, resultText(t, errResult), "workspace_ids is required")

	_, errResult = ResourceRefs(map[string]any{
		"workspace_ids": []any{"ws-one", float64(7)},
	}, "workspace_ids", "workspaces")
	require.NotNil(t, errResult)
	assert.Contains(t, resultText(t, errResult), "workspace_ids must be an array of ID strings")
}

func TestCheckMutatingOperationBlocked(t *testing.T) {
	sc := newTestServerContext(t, server.WithNonDestructiveMode(true))

	result := CheckMutatingOperation(sc, "delete")
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Delete operations are not allowed")
}

func TestCheckMutatingOperationAllowed(t *testing.T) {
	sc := newTestServerContext(t, server.WithNonDestructiveMode(false))
	assert.Nil(t, CheckMutatingOperation(sc, "delete"))
}

func TestWrapWithLogging(t *testing.T) {
	sc := newTestServerContext(t)

	handler := func(ctx context.Context, request mcp.CallToolRequest, got *server.ServerContext) (*mcp.CallToolResult, error) {
		assert.Same(t, sc, got)
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := WrapWithLogging("get_account_details", handler, sc)
	result, err := wrapped(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resultText(t, result))
}

func TestWrapWithLoggingPropagatesError(t *testing.T) {
	sc := newTestServerContext(t)

	wantErr := errors.New("boom")
	handler := func(ctx context.Context, request mcp.CallToolRequest, got *server.ServerContext) (*mcp.CallToolResult, error) {
		return nil, wantErr
	}

	wrapped := WrapWithLogging("get_account_details", handler, sc)
	_, err := wrapped(context.Background(), mcp.CallToolRequest{})
	assert.ErrorIs(t, err, wantErr)
}
