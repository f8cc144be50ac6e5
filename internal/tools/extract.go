package tools

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// ExtractString pulls a nested string value out of an API result using a
// gjson path (for example "data.attributes.log-read-url"). The second return
// value reports whether a non-empty string was found at that path.
func ExtractString(result map[string]any, path string) (string, bool) {
	encoded, err := json.Marshal(result)
	if err != nil {
		return "", false
	}
	value := gjson.GetBytes(encoded, path)
	if !value.Exists() || value.Type != gjson.String || value.Str == "" {
		return "", false
	}
	return value.Str, true
}
