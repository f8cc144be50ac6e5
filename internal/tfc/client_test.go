package tfc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, address string) *Client {
	t.Helper()
	return NewClient(Config{Token: "test-token", Address: address}, nil)
}

func TestRequestMissingToken(t *testing.T) {
	calls := int32(0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	client := NewClient(Config{Address: srv.URL}, nil)
	result := client.Request(context.Background(), RequestOptions{Path: "account/details"})

	assert.Equal(t, errMissingToken, result["error"])
	// Rejected before any network attempt.
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestRequestSendsAuthAndContentType(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"data": {"type": "users", "id": "user-1", "attributes": {"username": "alice"}}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "account/details"})

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, contentTypeJSONAPI, gotContentType)
	assert.NotContains(t, result, "error")
}

func TestRequestTokenOverride(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data": null}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	client.Request(context.Background(), RequestOptions{Path: "account/details", Token: "override-token"})

	assert.Equal(t, "Bearer override-token", gotAuth)
}

func TestRequestRedirectPreservesAuthorization(t *testing.T) {
	var headers []string
	var mux http.ServeMux
	srv := httptest.NewServer(&mux)
	defer srv.Close()

	mux.HandleFunc("/state-versions/sv-1/download", func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		w.Header().Set("Location", srv.URL+"/archivist/object")
		w.WriteHeader(http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/archivist/object", func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"terraform_version": "1.9.0"}`))
	})

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "state-versions/sv-1/download", RawResponse: true})

	require.Len(t, headers, 2)
	// The follow-up GET carries a byte-identical Authorization header.
	assert.Equal(t, headers[0], headers[1])
	assert.Equal(t, "Bearer test-token", headers[1])
	assert.Equal(t, "1.9.0", result["terraform_version"])
}

func TestRequestRedirectMissingLocation(t *testing.T) {
	calls := int32(0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "plans/plan-1/json-output"})

	assert.Equal(t, map[string]any{"error": errMissingLocation}, result)
	// No follow-up network call is made.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRequestRedirectFollowedOneLevelDeep(t *testing.T) {
	var mux http.ServeMux
	srv := httptest.NewServer(&mux)
	defer srv.Close()

	mux.HandleFunc("/first", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", srv.URL+"/second")
		w.WriteHeader(http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/second", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", srv.URL+"/third")
		w.WriteHeader(http.StatusTemporaryRedirect)
	})

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "first"})

	// The second redirect is not chased; it surfaces as a protocol error.
	assert.Equal(t, "API request failed: 307", result["error"])
}

func TestRequestReturnRedirectURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://archivist.terraform.io/v1/object?token=sig")
		w.WriteHeader(http.StatusTemporaryRedirect)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{
		Path:              "plans/plan-1/json-output",
		ReturnRedirectURL: true,
	})

	assert.Equal(t, "https://archivist.terraform.io/v1/object?token=sig", result["redirect-url"])
}

func TestRequestNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "workspaces/ws-1", Method: "DELETE"})

	assert.Equal(t, map[string]any{"status": "success", "status_code": http.StatusNoContent}, result)
}

func TestRequestAcceptText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Terraform v1.9.0\nInitializing the backend...\n"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "plans/plan-1/logs", AcceptText: true})

	assert.Equal(t, "Terraform v1.9.0\nInitializing the backend...\n", result["content"])
}

func TestRequestWrapsNonObjectJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1, 2, 3]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "some/endpoint", RawResponse: true})

	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, result["data"])
}

func TestRequestJSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "some/endpoint"})

	errMsg, ok := result["error"].(string)
	require.True(t, ok)
	assert.Contains(t, errMsg, "Failed to parse JSON response")
}

func TestRequestProtocolErrorWithDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors": [{"status": "422", "title": "invalid attribute"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "organizations", Method: "POST", Body: map[string]any{}})

	assert.Equal(t, "API request failed: 422", result["error"])
	details := result["details"].(map[string]any)
	assert.Contains(t, details, "errors")
}

func TestRequestProtocolErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "account/details"})

	assert.Equal(t, map[string]any{"error": "API request failed: 502"}, result)
}

func TestRequestNetworkErrorRedactsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(Config{Token: "sekret-token-value", Address: srv.URL}, nil)
	result := client.Request(context.Background(), RequestOptions{Path: "account/details"})

	errMsg, ok := result["error"].(string)
	require.True(t, ok)
	assert.Contains(t, errMsg, "Network error:")
	assert.NotContains(t, errMsg, "sekret-token-value")
}

func TestRequestQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	client.Request(context.Background(), RequestOptions{
		Path:   "organizations/example/workspaces",
		Params: map[string]string{"page[number]": "2", "page[size]": "20"},
	})

	assert.Equal(t, []string{"2"}, gotQuery["page[number]"])
	assert.Equal(t, []string{"20"}, gotQuery["page[size]"])
}

func TestRequestSendsJSONBody(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"type": "workspaces", "id": "ws-new"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	payload := NewPayload("workspaces", map[string]any{"name": "staging"})
	result := client.Request(context.Background(), RequestOptions{
		Path:   "organizations/example/workspaces",
		Method: "POST",
		Body:   payload,
	})

	assert.Equal(t, "staging", gotBody["data"].(map[string]any)["attributes"].(map[string]any)["name"])
	assert.NotContains(t, result, "error")
}

func TestRequestSendsJSONBodyOnDelete(t *testing.T) {
	// Relationship endpoints name the resources to detach in a DELETE body.
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{
		Path:   "varsets/varset-abc123/relationships/workspaces",
		Method: "DELETE",
		Body: map[string]any{
			"data": []map[string]any{{"type": "workspaces", "id": "ws-abc123"}},
		},
	})

	data := gotBody["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "ws-abc123", data[0].(map[string]any)["id"])
	assert.Equal(t, "success", result["status"])
}

func TestRequestFiltersEligibleResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {
			"type": "workspaces", "id": "ws-1",
			"attributes": {"name": "prod", "apply-duration-average": 5000},
			"links": {"self": "/api/v2/workspaces/ws-1"}
		}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{Path: "workspaces/ws-1"})

	item := result["data"].(map[string]any)
	attrs := item["attributes"].(map[string]any)
	assert.Contains(t, attrs, "name")
	assert.NotContains(t, attrs, "apply-duration-average")
	assert.NotContains(t, item, "links")
}

func TestRequestRawResponseSkipsFiltering(t *testing.T) {
	body := `{"data": {"type": "workspaces", "id": "ws-1", "attributes": {"apply-duration-average": 5000}, "links": {"self": "x"}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	t.Run("per-request flag", func(t *testing.T) {
		client := newTestClient(t, srv.URL)
		result := client.Request(context.Background(), RequestOptions{Path: "workspaces/ws-1", RawResponse: true})
		assert.Contains(t, result["data"].(map[string]any), "links")
	})

	t.Run("process-wide config", func(t *testing.T) {
		client := NewClient(Config{Token: "test-token", Address: srv.URL, RawResponses: true}, nil)
		result := client.Request(context.Background(), RequestOptions{Path: "workspaces/ws-1"})
		assert.Contains(t, result["data"].(map[string]any), "links")
	})
}

func TestRequestSkipsFilteringForExcludedPaths(t *testing.T) {
	body := `{"data": {"type": "plans", "id": "plan-1", "links": {"self": "x"}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	for _, path := range []string{
		"plans/plan-1/json-output",
		"plans/plan-1/logs",
		"state-versions/sv-1/download",
	} {
		result := client.Request(context.Background(), RequestOptions{Path: path})
		assert.Contains(t, result["data"].(map[string]any), "links", "path %s", path)
	}
}

func TestRequestManageResponsesNotFiltered(t *testing.T) {
	body := `{"data": {"type": "workspaces", "id": "ws-1", "links": {"self": "x"}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result := client.Request(context.Background(), RequestOptions{
		Path:   "organizations/example/workspaces",
		Method: "POST",
		Body:   map[string]any{},
	})
	assert.Contains(t, result["data"].(map[string]any), "links")
}

func TestRequestAbsoluteURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("log line"))
	}))
	defer srv.Close()

	// Absolute URLs bypass the configured address entirely.
	client := newTestClient(t, "http://unreachable.invalid")
	result := client.Request(context.Background(), RequestOptions{
		Path:        srv.URL + "/external/log/read",
		AbsoluteURL: true,
		AcceptText:  true,
	})

	assert.Equal(t, "/external/log/read", gotPath)
	assert.Equal(t, "log line", result["content"])
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvAddress, "https://tfe.internal.example.com/api/v2")
	t.Setenv(EnvRawResponses, "true")

	cfg := ConfigFromEnv()
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "https://tfe.internal.example.com/api/v2", cfg.Address)
	assert.True(t, cfg.RawResponses)
}
