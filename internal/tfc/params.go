package tfc

import (
	"fmt"
	"strconv"
	"strings"
)

// routingFields appear in the request path and are never emitted as query
// parameters.
var routingFields = map[string]struct{}{
	"organization":   {},
	"workspace_name": {},
	"workspace_id":   {},
	"run_id":         {},
	"plan_id":        {},
	"apply_id":       {},
	"project_id":     {},
}

// QueryParams translates a request's named fields into wire-format query
// parameter keys using the API's naming conventions:
//
//	page_number      -> page[number]
//	filter_status    -> filter[status]
//	search_name      -> search[name]
//	query_email      -> q[email]
//	q, search, sort  -> unchanged
//
// Fields with nil values are absent by definition and are dropped, as are
// empty filters (an empty filter is a no-op, not "filter by empty string").
// Unmatched field names are dropped. Boolean values serialize as the
// lowercase strings "true"/"false" because the wire protocol is
// string-typed.
func QueryParams(fields map[string]any) map[string]string {
	params := make(map[string]string)

	for name, value := range fields {
		if value == nil {
			continue
		}
		if _, routing := routingFields[name]; routing {
			continue
		}

		switch {
		case strings.HasPrefix(name, "page_"):
			params["page["+strings.TrimPrefix(name, "page_")+"]"] = stringify(value)

		case strings.HasPrefix(name, "filter_"):
			if s, ok := value.(string); ok && s == "" {
				continue
			}
			key := filterKey(name)
			params[key] = stringify(value)

		case strings.HasPrefix(name, "search_"):
			if s, ok := value.(string); ok && s == "" {
				continue
			}
			params["search["+strings.TrimPrefix(name, "search_")+"]"] = stringify(value)

		case strings.HasPrefix(name, "query_"):
			if s, ok := value.(string); ok && s == "" {
				continue
			}
			params["q["+strings.TrimPrefix(name, "query_")+"]"] = stringify(value)

		case name == "q" || name == "search" || name == "sort":
			if s, ok := value.(string); ok && s == "" {
				continue
			}
			params[name] = stringify(value)
		}
	}

	return params
}

// filterKey maps a filter_* field name to its bracketed wire key. Most
// filters are single-level with hyphenated names, but a few are structurally
// two-level and must be special-cased ahead of the generic rule.
func filterKey(name string) string {
	switch name {
	case "filter_workspace_name":
		return "filter[workspace][name]"
	case "filter_organization_name":
		return "filter[organization][name]"
	}
	if rest, ok := strings.CutPrefix(name, "filter_permissions_"); ok {
		return "filter[permissions][" + hyphenate(rest) + "]"
	}
	return "filter[" + hyphenate(strings.TrimPrefix(name, "filter_")) + "]"
}

func hyphenate(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// stringify converts a field value to its query-string representation.
// Booleans must come out lowercase; floats that carry integral values (the
// usual case for JSON-decoded numbers) must not grow a fractional part.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
