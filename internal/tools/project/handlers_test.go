package project

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
)

func newTestContext(t *testing.T, handler http.HandlerFunc, opts ...server.Option) *server.ServerContext {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := tfc.NewClient(tfc.Config{Token: "test-token", Address: ts.URL}, nil)
	opts = append([]server.Option{server.WithTFCClient(client)}, opts...)

	sc, err := server.NewServerContext(context.Background(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })

	return sc
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleListProjects(t *testing.T) {
	var gotPath string
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	result, err := handleListProjects(context.Background(), newRequest(map[string]any{
		"organization": "acme",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "/organizations/acme/projects", gotPath)
}

func TestHandleMoveWorkspacesToProject(t *testing.T) {
	var gotBody map[string]any
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/projects/prj-abc123/relationships/workspaces", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusNoContent)
	})

	result, err := handleMoveWorkspacesToProject(context.Background(), newRequest(map[string]any{
		"project_id":    "prj-abc123",
		"workspace_ids": []any{"ws-one", "ws-two"},
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	data := gotBody["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, map[string]any{"type": "workspaces", "id": "ws-one"}, data[0])
}

func TestHandleMoveWorkspacesToProjectRejectsNonStringIDs(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	result, err := handleMoveWorkspacesToProject(context.Background(), newRequest(map[string]any{
		"project_id":    "prj-abc123",
		"workspace_ids": []any{"ws-one", float64(42)},
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "workspace_ids must be an array of ID strings")
}

func TestHandleListProjectTagBindings(t *testing.T) {
	var gotPath string
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"data": [{"type": "tag-bindings", "attributes": {"key": "env", "value": "prod"}}]}`))
	})

	result, err := handleListProjectTagBindings(context.Background(), newRequest(map[string]any{
		"project_id": "prj-abc123",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, "/projects/prj-abc123/tag-bindings", gotPath)
	assert.Contains(t, resultText(t, result), "env")
}

func TestHandleAddUpdateProjectTagBindingsPayload(t *testing.T) {
	var gotBody map[string]any
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/projects/prj-abc123/tag-bindings", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	result, err := handleAddUpdateProjectTagBindings(context.Background(), newRequest(map[string]any{
		"project_id": "prj-abc123",
		"tag_bindings": []any{
			map[string]any{"key": "env", "value": "prod"},
			map[string]any{"key": "team"},
		},
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	data := gotBody["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, "tag-bindings", first["type"])
	assert.Equal(t, map[string]any{"key": "env", "value": "prod"}, first["attributes"])
	// A binding without a value keeps an empty string, matching the API.
	second := data[1].(map[string]any)
	assert.Equal(t, map[string]any{"key": "team", "value": ""}, second["attributes"])
}

func TestHandleAddUpdateProjectTagBindingsValidation(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	result, err := handleAddUpdateProjectTagBindings(context.Background(), newRequest(map[string]any{
		"project_id": "prj-abc123",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "tag_bindings is required")

	result, err = handleAddUpdateProjectTagBindings(context.Background(), newRequest(map[string]any{
		"project_id":   "prj-abc123",
		"tag_bindings": []any{"env=prod"},
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "tag_bindings must be an array of {key, value} objects")

	result, err = handleAddUpdateProjectTagBindings(context.Background(), newRequest(map[string]any{
		"project_id":   "prj-abc123",
		"tag_bindings": []any{map[string]any{"value": "prod"}},
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "every tag binding needs a non-empty key")
}

func TestHandleDeleteProjectBlockedInNonDestructiveMode(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the operation is blocked")
	})

	result, err := handleDeleteProject(context.Background(), newRequest(map[string]any{
		"project_id": "prj-abc123",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "not allowed in non-destructive mode")
}
