package filter

import "fmt"

// ResourceType classifies a Terraform Cloud resource for policy selection.
// The enumeration is closed: unknown values map to ResourceGeneric.
type ResourceType string

const (
	ResourceWorkspace    ResourceType = "workspace"
	ResourceRun          ResourceType = "run"
	ResourceOrganization ResourceType = "organization"
	ResourceProject      ResourceType = "project"
	ResourceVariable     ResourceType = "variable"
	ResourcePlan         ResourceType = "plan"
	ResourceApply        ResourceType = "apply"
	ResourceStateVersion ResourceType = "state-version"
	ResourceCostEstimate ResourceType = "cost-estimate"
	ResourceAssessment   ResourceType = "assessment"
	ResourceAccount      ResourceType = "account"
	ResourceGeneric      ResourceType = "generic"
)

// Operation classifies an API call for policy selection.
type Operation string

const (
	// OperationRead is a single-resource GET keyed by an ID-shaped path segment.
	OperationRead Operation = "read"
	// OperationList is a collection GET.
	OperationList Operation = "list"
	// OperationManage is any POST/PATCH/DELETE call.
	OperationManage Operation = "manage"
)

// resourceTypeAliases maps JSON:API type discriminators and free-form names
// (singular and plural) to the closed ResourceType enumeration.
var resourceTypeAliases = map[string]ResourceType{
	"workspace":          ResourceWorkspace,
	"workspaces":         ResourceWorkspace,
	"run":                ResourceRun,
	"runs":               ResourceRun,
	"organization":       ResourceOrganization,
	"organizations":      ResourceOrganization,
	"project":            ResourceProject,
	"projects":           ResourceProject,
	"var":                ResourceVariable,
	"vars":               ResourceVariable,
	"variable":           ResourceVariable,
	"variables":          ResourceVariable,
	"plan":               ResourcePlan,
	"plans":              ResourcePlan,
	"apply":              ResourceApply,
	"applies":            ResourceApply,
	"state-version":      ResourceStateVersion,
	"state-versions":     ResourceStateVersion,
	"cost-estimate":      ResourceCostEstimate,
	"cost-estimates":     ResourceCostEstimate,
	"assessment-result":  ResourceAssessment,
	"assessment-results": ResourceAssessment,
	"user":               ResourceAccount,
	"users":              ResourceAccount,
}

// ParseResourceType normalizes a free-form resource type string to the
// closed enumeration. Unknown values map to ResourceGeneric.
func ParseResourceType(s string) ResourceType {
	if rt, ok := resourceTypeAliases[s]; ok {
		return rt
	}
	switch rt := ResourceType(s); rt {
	case ResourceWorkspace, ResourceRun, ResourceOrganization, ResourceProject,
		ResourceVariable, ResourcePlan, ResourceApply, ResourceStateVersion,
		ResourceCostEstimate, ResourceAssessment, ResourceAccount, ResourceGeneric:
		return rt
	}
	return ResourceGeneric
}

// ParseOperation normalizes a free-form operation string. Unlike resource
// types, an invalid operation is an input-validation failure, not a silent
// fallback.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OperationRead, OperationList, OperationManage:
		return op, nil
	}
	return "", fmt.Errorf("invalid operation type: %q", s)
}

// FieldSet is a set of attribute or relationship names.
type FieldSet map[string]struct{}

// NewFieldSet builds a FieldSet from the given names.
func NewFieldSet(names ...string) FieldSet {
	s := make(FieldSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s FieldSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Policy declares which fields to remove from a resource's attributes and
// which relationships to keep. Policies are immutable after startup.
type Policy struct {
	// AlwaysRemove fields are dropped regardless of operation kind.
	AlwaysRemove FieldSet
	// ReadRemove fields are dropped only from single-resource reads.
	ReadRemove FieldSet
	// ListRemove fields are dropped only from list responses.
	ListRemove FieldSet
	// EssentialRelationships, when non-empty, is an allow-list applied to
	// relationships of single-resource reads. List and manage responses keep
	// all relationships.
	EssentialRelationships FieldSet
}

// removeSet returns the union of AlwaysRemove and the operation-specific set.
func (p Policy) removeSet(op Operation) FieldSet {
	merged := make(FieldSet, len(p.AlwaysRemove)+len(p.ReadRemove)+len(p.ListRemove))
	for f := range p.AlwaysRemove {
		merged[f] = struct{}{}
	}
	switch op {
	case OperationRead:
		for f := range p.ReadRemove {
			merged[f] = struct{}{}
		}
	case OperationList:
		for f := range p.ListRemove {
			merged[f] = struct{}{}
		}
	}
	return merged
}
