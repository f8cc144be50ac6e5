package workspace

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

func TestHandleListWorkspaces(t *testing.T) {
	var gotPath, gotSearch string
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSearch = r.URL.Query().Get("search[name]")
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	result, err := handleListWorkspaces(context.Background(), newRequest(map[string]any{
		"organization": "acme",
		"search":       "prod",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, "/organizations/acme/workspaces", gotPath)
	// Bare "search" passes through unbracketed.
	assert.Empty(t, gotSearch)
}

func TestHandleListWorkspacesMissingOrganization(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	result, err := handleListWorkspaces(context.Background(), newRequest(map[string]any{}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "organization is required")
}

func TestHandleGetWorkspaceDetails(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/acme/workspaces/prod-eu", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": {"id": "ws-abc123", "type": "workspaces", "attributes": {"name": "prod-eu"}}}`))
	})

	result, err := handleGetWorkspaceDetails(context.Background(), newRequest(map[string]any{
		"organization":   "acme",
		"workspace_name": "prod-eu",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "ws-abc123")
}

func TestHandleCreateWorkspacePayload(t *testing.T) {
	var gotBody map[string]any
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write([]byte(`{"data": {"id": "ws-new", "type": "workspaces"}}`))
	})

	result, err := handleCreateWorkspace(context.Background(), newRequest(map[string]any{
		"organization":      "acme",
		"name":              "staging",
		"terraform_version": "1.9.0",
		"auto_apply":        true,
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	data := gotBody["data"].(map[string]any)
	assert.Equal(t, "workspaces", data["type"])
	attributes := data["attributes"].(map[string]any)
	assert.Equal(t, "staging", attributes["name"])
	assert.Equal(t, "1.9.0", attributes["terraform-version"])
	assert.Equal(t, true, attributes["auto-apply"])
	// The organization routes the request and is not an attribute.
	assert.NotContains(t, attributes, "organization")
}

func TestHandleLockWorkspaceWithReason(t *testing.T) {
	var gotBody map[string]any
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/workspaces/ws-abc123/actions/lock", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write([]byte(`{"data": {"id": "ws-abc123", "type": "workspaces"}}`))
	})

	result, err := handleLockWorkspace(context.Background(), newRequest(map[string]any{
		"workspace_id": "ws-abc123",
		"reason":       "maintenance window",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, map[string]any{"reason": "maintenance window"}, gotBody)
}

func TestHandleUnlockWorkspace(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workspaces/ws-abc123/actions/unlock", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": {"id": "ws-abc123", "type": "workspaces"}}`))
	})

	result, err := handleUnlockWorkspace(context.Background(), newRequest(map[string]any{
		"workspace_id": "ws-abc123",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestHandleDeleteWorkspaceBlockedInNonDestructiveMode(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the operation is blocked")
	})

	result, err := handleDeleteWorkspace(context.Background(), newRequest(map[string]any{
		"organization":   "acme",
		"workspace_name": "prod-eu",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "not allowed in non-destructive mode")
}

func TestHandleSafeDeleteWorkspace(t *testing.T) {
	var gotMethod, gotPath string
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}, server.WithNonDestructiveMode(false))

	result, err := handleSafeDeleteWorkspace(context.Background(), newRequest(map[string]any{
		"organization":   "acme",
		"workspace_name": "scratch",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/organizations/acme/workspaces/scratch/actions/safe-delete", gotPath)
	assert.Contains(t, resultText(t, result), `"status": "success"`)
}

func TestHandleGetDataRetentionPolicy(t *testing.T) {
	var gotPath string
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"data": {"id": "drp-abc123", "type": "data-retention-policy-delete-olders", "attributes": {"delete-older-than-n-days": 30}}}`))
	})

	result, err := handleGetDataRetentionPolicy(context.Background(), newRequest(map[string]any{
		"workspace_id": "ws-abc123",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, "/workspaces/ws-abc123/relationships/data-retention-policy", gotPath)
	assert.Contains(t, resultText(t, result), "drp-abc123")
}

func TestHandleSetDataRetentionPolicyPayload(t *testing.T) {
	var gotBody map[string]any
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/workspaces/ws-abc123/relationships/data-retention-policy", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write([]byte(`{"data": {"id": "drp-new", "type": "data-retention-policy"}}`))
	})

	result, err := handleSetDataRetentionPolicy(context.Background(), newRequest(map[string]any{
		"workspace_id": "ws-abc123",
		"days":         float64(30),
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	data := gotBody["data"].(map[string]any)
	assert.Equal(t, "data-retention-policy", data["type"])
	// The day count is sent as an integer, not a float.
	assert.Equal(t, map[string]any{"days": float64(30)}, data["attributes"])
}

func TestHandleSetDataRetentionPolicyMissingDays(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	result, err := handleSetDataRetentionPolicy(context.Background(), newRequest(map[string]any{
		"workspace_id": "ws-abc123",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "days is required")
}

func TestHandleDeleteDataRetentionPolicyBlockedInNonDestructiveMode(t *testing.T) {
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the operation is blocked")
	})

	result, err := handleDeleteDataRetentionPolicy(context.Background(), newRequest(map[string]any{
		"workspace_id": "ws-abc123",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "not allowed in non-destructive mode")
}

func TestHandleDeleteDataRetentionPolicy(t *testing.T) {
	var gotMethod, gotPath string
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}, server.WithNonDestructiveMode(false))

	result, err := handleDeleteDataRetentionPolicy(context.Background(), newRequest(map[string]any{
		"workspace_id": "ws-abc123",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/workspaces/ws-abc123/relationships/data-retention-policy", gotPath)
}

func TestRegisterWorkspaceToolsGating(t *testing.T) {
	// Destructive tools only exist when non-destructive mode is off; the
	// handlers enforce the same policy at invocation time, so a blocked
	// delete never reaches the API even if registration were bypassed.
	sc := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	result, err := handleForceUnlockWorkspace(context.Background(), newRequest(map[string]any{
		"workspace_id": "ws-abc123",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Force Unlock operations are not allowed")
}
