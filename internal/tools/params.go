// Package tools provides shared utilities and types for MCP tool implementations.
package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// RequiredString extracts a required string argument. The second return value
// is a ready-made error result when the argument is missing or empty.
func RequiredString(args map[string]any, name string) (string, *mcp.CallToolResult) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s is required", name))
	}
	return value, nil
}

// OptionalString extracts an optional string argument, returning "" when absent.
func OptionalString(args map[string]any, name string) string {
	value, _ := args[name].(string)
	return value
}

// OptionalBool extracts an optional boolean argument. The second return value
// reports whether the argument was present, so handlers can distinguish an
// explicit false from an unset field.
func OptionalBool(args map[string]any, name string) (bool, bool) {
	value, ok := args[name].(bool)
	return value, ok
}

// OptionalNumber extracts an optional numeric argument. JSON numbers arrive
// as float64.
func OptionalNumber(args map[string]any, name string) (float64, bool) {
	value, ok := args[name].(float64)
	return value, ok
}

// ResourceRefs extracts a required list of ID strings and shapes each one as
// a JSON:API resource reference of the given type, ready for a relationship
// payload. The second return value is a ready-made error result when the
// argument is missing, empty, or not a list of strings.
func ResourceRefs(args map[string]any, name, resourceType string) ([]map[string]any, *mcp.CallToolResult) {
	rawIDs, ok := args[name].([]any)
	if !ok || len(rawIDs) == 0 {
		return nil, mcp.NewToolResultError(fmt.Sprintf("%s is required", name))
	}

	refs := make([]map[string]any, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, ok := raw.(string)
		if !ok || id == "" {
			return nil, mcp.NewToolResultError(fmt.Sprintf("%s must be an array of ID strings", name))
		}
		refs = append(refs, map[string]any{"type": resourceType, "id": id})
	}
	return refs, nil
}

// Fields picks the named arguments that are present, preserving their values.
// Handlers use this to forward pagination and filter arguments to the query
// parameter codec without enumerating each one.
func Fields(args map[string]any, names ...string) map[string]any {
	fields := make(map[string]any, len(names))
	for _, name := range names {
		if value, ok := args[name]; ok {
			fields[name] = value
		}
	}
	return fields
}
