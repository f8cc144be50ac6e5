package filter

import (
	"strings"

	"github.com/tidwall/gjson"
)

// pathPattern pairs a path substring with the resource type it implies.
type pathPattern struct {
	substring    string
	resourceType ResourceType
}

// pathPatterns is scanned in order; the first match wins. Order encodes
// specificity: state-version-outputs must be tested before the bare
// state-versions substring, and both before coarser collection names that
// can also appear in nested paths.
var pathPatterns = []pathPattern{
	{"state-version-outputs", ResourceStateVersion},
	{"state-versions", ResourceStateVersion},
	{"assessment-results", ResourceAssessment},
	{"cost-estimates", ResourceCostEstimate},
	{"workspaces", ResourceWorkspace},
	{"runs", ResourceRun},
	{"organizations", ResourceOrganization},
	{"projects", ResourceProject},
	{"plans", ResourcePlan},
	{"applies", ResourceApply},
	{"vars", ResourceVariable},
	{"variables", ResourceVariable},
	{"account/details", ResourceAccount},
	{"users", ResourceAccount},
}

// idPrefixes are Terraform Cloud external ID prefixes. A GET whose path
// contains a segment starting with one of these targets a single resource.
var idPrefixes = []string{"ws-", "run-", "org-", "prj-", "var-"}

// skipTerms mark endpoints that return large or non-JSON content where
// filtering either does not apply or would corrupt the payload.
var skipTerms = []string{"log", "download", "json-output", "content"}

// DetectResourceType infers the resource type for an API call, first from
// the request path and then, as fallback, from the JSON type discriminator
// in the response body.
func DetectResourceType(path string, body []byte) ResourceType {
	for _, p := range pathPatterns {
		if strings.Contains(path, p.substring) {
			return p.resourceType
		}
	}

	if len(body) > 0 {
		data := gjson.GetBytes(body, "data")
		var discriminator gjson.Result
		if data.IsArray() {
			discriminator = gjson.GetBytes(body, "data.0.type")
		} else if data.IsObject() {
			discriminator = data.Get("type")
		}
		if discriminator.Exists() {
			return ParseResourceType(discriminator.String())
		}
	}

	return ResourceGeneric
}

// DetectOperation infers the operation kind from the request path and
// method. Any non-GET method is manage; a GET with an ID-shaped path
// segment is a read, otherwise a list.
func DetectOperation(path, method string) Operation {
	if !strings.EqualFold(method, "GET") {
		return OperationManage
	}
	for _, segment := range strings.Split(path, "/") {
		for _, prefix := range idPrefixes {
			if strings.HasPrefix(segment, prefix) {
				return OperationRead
			}
		}
	}
	return OperationList
}

// ShouldFilter reports whether the response for this path/method
// combination should pass through the filtering engine. Only GET responses
// are filtered, and log/download/content endpoints are always skipped.
func ShouldFilter(path, method string) bool {
	if !strings.EqualFold(method, "GET") {
		return false
	}
	lower := strings.ToLower(path)
	for _, term := range skipTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}
