package filter

import (
	"log/slog"
)

// Engine applies filtering policies to decoded API envelopes. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	logger *slog.Logger

	// policyFor resolves the policy for a resource type. Kept as a function
	// field so tests can exercise the recovery path.
	policyFor func(ResourceType) Policy
}

// NewEngine creates an Engine using the given policy table. A nil table
// selects the built-in defaults; a nil logger selects slog.Default().
func NewEngine(policies map[ResourceType]Policy, logger *slog.Logger) *Engine {
	if policies == nil {
		policies = DefaultPolicies()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger: logger,
		policyFor: func(rt ResourceType) Policy {
			return policies[rt]
		},
	}
}

// Apply filters an API envelope according to the policy for the given
// resource type and operation kind. The input is never mutated: every map
// touched along the way is shallow-copied first, so callers holding a
// reference to the original envelope see it unchanged.
//
// Filtering is best-effort: if anything goes wrong the original envelope is
// returned unfiltered and a warning is logged.
func (e *Engine) Apply(envelope map[string]any, resourceType ResourceType, operation Operation) (result map[string]any) {
	if envelope == nil {
		return envelope
	}
	if _, ok := envelope["data"]; !ok {
		return envelope
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("response filtering failed, returning unfiltered response",
				slog.Any("reason", r),
				slog.String("resource_type", string(resourceType)),
				slog.String("operation", string(operation)))
			result = envelope
		}
	}()

	policy := e.policyFor(resourceType)

	filtered := make(map[string]any, len(envelope))
	for k, v := range envelope {
		filtered[k] = v
	}

	switch data := envelope["data"].(type) {
	case []any:
		items := make([]any, len(data))
		for i, raw := range data {
			if item, ok := raw.(map[string]any); ok {
				items[i] = filterItem(item, policy, operation)
			} else {
				items[i] = raw
			}
		}
		filtered["data"] = items
	case map[string]any:
		filtered["data"] = filterItem(data, policy, operation)
	}

	if operation == OperationList {
		filterListMetadata(filtered)
	}

	return filtered
}

// filterItem returns a filtered copy of a single resource object.
func filterItem(item map[string]any, policy Policy, operation Operation) map[string]any {
	out := make(map[string]any, len(item))
	for k, v := range item {
		out[k] = v
	}

	if attrs, ok := out["attributes"].(map[string]any); ok {
		remove := policy.removeSet(operation)
		trimmed := make(map[string]any, len(attrs))
		for k, v := range attrs {
			if _, drop := remove[k]; !drop {
				trimmed[k] = v
			}
		}
		out["attributes"] = trimmed
	}

	if rels, ok := out["relationships"].(map[string]any); ok {
		out["relationships"] = filterRelationships(rels, policy, operation)
	}

	// Item-level links are navigational only.
	delete(out, "links")

	return out
}

// filterRelationships returns a filtered copy of a resource's relationships.
// For single-resource reads with an essential-relationship allow-list, only
// listed relationships survive; list and manage responses keep everything
// since they are not fetching the detail-heavy view. The links sub-key is
// stripped from every surviving relationship.
func filterRelationships(rels map[string]any, policy Policy, operation Operation) map[string]any {
	allowListed := operation == OperationRead && len(policy.EssentialRelationships) > 0

	out := make(map[string]any, len(rels))
	for name, raw := range rels {
		if allowListed && !policy.EssentialRelationships.Contains(name) {
			continue
		}
		if rel, ok := raw.(map[string]any); ok {
			trimmed := make(map[string]any, len(rel))
			for k, v := range rel {
				if k != "links" {
					trimmed[k] = v
				}
			}
			out[name] = trimmed
		} else {
			out[name] = raw
		}
	}
	return out
}

// paginationKeys are the only pagination fields a list response keeps.
var paginationKeys = []string{"current-page", "total-pages", "total-count"}

// linkKeys are the only top-level navigation links a list response keeps.
var linkKeys = []string{"next", "prev", "first", "last"}

// filterListMetadata trims list-response metadata and pagination links
// in-place on the (already copied) envelope.
func filterListMetadata(envelope map[string]any) {
	if meta, ok := envelope["meta"].(map[string]any); ok {
		trimmedMeta := make(map[string]any, len(meta))
		for k, v := range meta {
			trimmedMeta[k] = v
		}

		if pagination, ok := trimmedMeta["pagination"].(map[string]any); ok {
			trimmed := make(map[string]any, len(paginationKeys))
			for _, k := range paginationKeys {
				if v, present := pagination[k]; present {
					trimmed[k] = v
				}
			}
			trimmedMeta["pagination"] = trimmed
		}

		if counts, ok := trimmedMeta["status-counts"].(map[string]any); ok {
			if total, present := counts["total"]; present {
				trimmedMeta["status-counts"] = map[string]any{"total": total}
			} else {
				delete(trimmedMeta, "status-counts")
			}
		}

		envelope["meta"] = trimmedMeta
	}

	if links, ok := envelope["links"].(map[string]any); ok {
		trimmed := make(map[string]any, len(linkKeys))
		for _, k := range linkKeys {
			if v, present := links[k]; present {
				trimmed[k] = v
			}
		}
		envelope["links"] = trimmed
	}
}
