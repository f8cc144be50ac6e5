package tfc

import "strings"

// NewPayload assembles a JSON:API resource envelope from a request's named
// fields:
//
//	{"data": {"type": <resourceType>, "attributes": {...}}}
//
// Attribute names are kebab-cased to match the wire format. Fields listed in
// exclude are routing/structural and never become attributes. Fields with
// nil values are absent: an unset field must never overwrite a remote value,
// so presence, not falsiness, governs inclusion (partial-update semantics).
func NewPayload(resourceType string, fields map[string]any, exclude ...string) map[string]any {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	attributes := make(map[string]any, len(fields))
	for name, value := range fields {
		if value == nil {
			continue
		}
		if _, skip := excluded[name]; skip {
			continue
		}
		attributes[strings.ReplaceAll(name, "_", "-")] = value
	}

	return map[string]any{
		"data": map[string]any{
			"type":       resourceType,
			"attributes": attributes,
		},
	}
}

// AddRelationship attaches a relationship entry to a payload built by
// NewPayload. Repeated calls accumulate entries without clobbering
// previously added relationships. The payload is returned for chaining.
func AddRelationship(payload map[string]any, name, resourceType, id string) map[string]any {
	data, ok := payload["data"].(map[string]any)
	if !ok {
		return payload
	}

	relationships, ok := data["relationships"].(map[string]any)
	if !ok {
		relationships = make(map[string]any)
		data["relationships"] = relationships
	}

	relationships[name] = map[string]any{
		"data": map[string]any{
			"type": resourceType,
			"id":   id,
		},
	}

	return payload
}
