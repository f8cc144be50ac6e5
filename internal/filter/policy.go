package filter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPolicies returns the built-in, audit-conservative policy table.
//
// Fields tied to compliance and audit trails (permissions, timestamps,
// status history, actor identity) must never appear in any remove set,
// regardless of resource type. Any new policy added here must honor that
// invariant.
func DefaultPolicies() map[ResourceType]Policy {
	return map[ResourceType]Policy{
		ResourceWorkspace: {
			// Statistical aggregations only. User and audit tracking fields stay.
			AlwaysRemove: NewFieldSet(
				"apply-duration-average",
				"plan-duration-average",
				"policy-check-failures",
				"run-failures",
			),
			ListRemove: NewFieldSet(
				"workspace-kpis-runs-count",
				"unarchived-workspace-change-requests-count",
			),
			EssentialRelationships: NewFieldSet(
				"organization",
				"project",
				"current-run",
				"current-state-version",
				"current-configuration-version",
			),
		},
		ResourceRun: {
			// Permissions, actions, and source are kept for audit trails.
			EssentialRelationships: NewFieldSet(
				"workspace",
				"plan",
				"apply",
				"cost-estimate",
			),
		},
		ResourceOrganization: {
			// Internal system flags only. Auth policy fields such as
			// saml-enabled and two-factor-conformant stay for audits.
			AlwaysRemove: NewFieldSet(
				"fair-run-queuing-enabled",
				"send-passing-statuses-for-untriggered-speculative-plans",
			),
		},
		ResourceProject: {
			EssentialRelationships: NewFieldSet("organization"),
		},
		ResourceVariable: {
			// version-id and created-at are kept for change tracking.
		},
		ResourcePlan: {
			ReadRemove: NewFieldSet("resource-drift"),
			ListRemove: NewFieldSet("execution-details"),
			EssentialRelationships: NewFieldSet(
				"run",
				"state-versions",
			),
		},
		ResourceApply: {
			ListRemove: NewFieldSet("execution-details"),
			EssentialRelationships: NewFieldSet(
				"run",
				"state-versions",
			),
		},
		ResourceStateVersion: {
			AlwaysRemove: NewFieldSet(
				"vcs-commit-sha",
				"vcs-commit-url",
			),
			ListRemove: NewFieldSet(
				"hosted-state-download-url",
				"hosted-json-state-download-url",
				"hosted-state-upload-url",
			),
			EssentialRelationships: NewFieldSet(
				"workspace",
				"run",
				"outputs",
			),
		},
		ResourceCostEstimate: {
			// status-timestamps and error messages stay for the audit timeline.
			ListRemove:             NewFieldSet("resources-count"),
			EssentialRelationships: NewFieldSet("run"),
		},
		ResourceAssessment: {
			// Log URLs stay so audits can reach the raw output.
			EssentialRelationships: NewFieldSet("workspace"),
		},
		ResourceAccount: {
			AlwaysRemove: NewFieldSet(
				"password",   // never present, removed defensively
				"avatar-url", // UI-only
			),
		},
	}
}

// policyFile is the YAML shape of a per-resource-type policy override.
type policyFile map[string]struct {
	AlwaysRemove           []string `yaml:"always_remove"`
	ReadRemove             []string `yaml:"read_remove"`
	ListRemove             []string `yaml:"list_remove"`
	EssentialRelationships []string `yaml:"essential_relationships"`
}

// LoadPolicyFile reads a YAML policy file and merges it over the built-in
// defaults. A resource type present in the file replaces the default policy
// for that type wholesale; types absent from the file keep their defaults.
// Resource type keys must parse to a known type.
func LoadPolicyFile(path string) (map[ResourceType]Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var file policyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	policies := DefaultPolicies()
	for key, entry := range file {
		rt := ParseResourceType(key)
		if rt == ResourceGeneric && key != string(ResourceGeneric) {
			return nil, fmt.Errorf("unknown resource type %q in policy file", key)
		}
		policies[rt] = Policy{
			AlwaysRemove:           NewFieldSet(entry.AlwaysRemove...),
			ReadRemove:             NewFieldSet(entry.ReadRemove...),
			ListRemove:             NewFieldSet(entry.ListRemove...),
			EssentialRelationships: NewFieldSet(entry.EssentialRelationships...),
		}
	}
	return policies, nil
}
