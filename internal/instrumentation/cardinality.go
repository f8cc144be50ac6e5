package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always normalize API paths before using them as metric labels: they embed
// organization names and per-resource external IDs.

// idPrefixes are the external ID prefixes Terraform Cloud assigns to
// resources. A path segment starting with one of these is a unique ID and
// must never reach a metric label.
var idPrefixes = []string{
	"ws-", "run-", "prj-", "org-", "plan-", "apply-", "sv-", "svo-",
	"var-", "cv-", "ce-", "asmtres-", "user-", "pol-", "polset-", "at-",
}

// NormalizeAPIPath collapses the dynamic segments of a Terraform Cloud API
// path into placeholders so the label space stays bounded.
//
// # Examples
//
//	NormalizeAPIPath("organizations/acme/workspaces")       // "organizations/:organization/workspaces"
//	NormalizeAPIPath("workspaces/ws-abc123/vars")           // "workspaces/:id/vars"
//	NormalizeAPIPath("runs/run-xyz789/apply")               // "runs/:id/apply"
//	NormalizeAPIPath("account/details")                     // "account/details"
func NormalizeAPIPath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	for i, segment := range segments {
		switch {
		case i > 0 && segments[i-1] == "organizations":
			segments[i] = ":organization"
		case isExternalID(segment):
			segments[i] = ":id"
		}
	}

	return strings.Join(segments, "/")
}

func isExternalID(segment string) bool {
	for _, prefix := range idPrefixes {
		if strings.HasPrefix(segment, prefix) && len(segment) > len(prefix) {
			return true
		}
	}
	return false
}
