package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectResourceTypeFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want ResourceType
	}{
		{"workspace by id", "workspaces/ws-abc123", ResourceWorkspace},
		{"organization workspaces list", "organizations/example/workspaces", ResourceWorkspace},
		{"runs", "runs/run-abc123", ResourceRun},
		{"workspace runs", "workspaces/ws-abc123/runs", ResourceWorkspace},
		{"organizations pattern precedes projects", "organizations/example/projects", ResourceOrganization},
		{"standalone project", "projects/prj-abc123", ResourceProject},
		{"plans", "plans/plan-abc123", ResourcePlan},
		{"applies", "applies/apply-abc123", ResourceApply},
		{"state versions", "state-versions/sv-abc123", ResourceStateVersion},
		{"state version outputs before state versions", "state-versions/sv-abc123/outputs", ResourceStateVersion},
		{"standalone state version outputs", "state-version-outputs/wsout-abc123", ResourceStateVersion},
		{"assessment results", "assessment-results/asmtres-abc123", ResourceAssessment},
		{"cost estimates", "cost-estimates/ce-abc123", ResourceCostEstimate},
		{"account details", "account/details", ResourceAccount},
		{"unknown path", "oauth-clients/oc-1", ResourceGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectResourceType(tt.path, nil))
		})
	}
}

func TestDetectResourceTypePathWinsOverBody(t *testing.T) {
	// The body discriminator disagrees with the path; the path-table match
	// must win, and it must be the first applicable pattern, not a later
	// coarser one (the path also contains "outputs" and an sv- segment).
	body := []byte(`{"data": [{"type": "state-version-outputs"}]}`)
	got := DetectResourceType("state-versions/sv-abc123/outputs", body)
	assert.Equal(t, ResourceStateVersion, got)
}

func TestDetectResourceTypeBodyFallback(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ResourceType
	}{
		{"singular object", `{"data": {"type": "vars", "id": "var-1"}}`, ResourceVariable},
		{"first list element", `{"data": [{"type": "runs"}, {"type": "plans"}]}`, ResourceRun},
		{"enum value match", `{"data": {"type": "project"}}`, ResourceProject},
		{"unknown discriminator", `{"data": {"type": "policy-sets"}}`, ResourceGeneric},
		{"empty list", `{"data": []}`, ResourceGeneric},
		{"no data key", `{"errors": []}`, ResourceGeneric},
		{"scalar data", `{"data": 42}`, ResourceGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectResourceType("unmatched/path", []byte(tt.body)))
		})
	}
}

func TestDetectOperation(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		method string
		want   Operation
	}{
		{"get with workspace id", "workspaces/ws-abc123", "GET", OperationRead},
		{"get with run id", "runs/run-abc123", "GET", OperationRead},
		{"get with project id", "projects/prj-abc123", "GET", OperationRead},
		{"get with variable id", "workspaces/ws-1/vars/var-abc", "GET", OperationRead},
		{"collection get", "organizations/example/workspaces", "GET", OperationList},
		{"lowercase method", "workspaces/ws-abc123", "get", OperationRead},
		{"post is manage", "organizations/example/workspaces", "POST", OperationManage},
		{"patch is manage", "workspaces/ws-abc123", "PATCH", OperationManage},
		{"delete is manage", "workspaces/ws-abc123", "DELETE", OperationManage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectOperation(tt.path, tt.method))
		})
	}
}

func TestShouldFilter(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		method string
		want   bool
	}{
		{"plain get", "workspaces/ws-abc123", "GET", true},
		{"post skipped", "organizations/example/workspaces", "POST", false},
		{"delete skipped", "workspaces/ws-abc123", "DELETE", false},
		{"log endpoint skipped", "plans/plan-1/logs", "GET", false},
		{"download endpoint skipped", "state-versions/sv-1/download", "GET", false},
		{"json-output skipped", "plans/plan-1/json-output", "GET", false},
		{"content skipped", "configuration-versions/cv-1/content", "GET", false},
		{"case-insensitive path match", "plans/plan-1/LOGS", "GET", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldFilter(tt.path, tt.method))
		})
	}
}
