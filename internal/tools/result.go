package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// Result converts a Terraform Cloud API response map into an MCP tool result.
// Responses carrying an "error" key become MCP error results; everything else
// is returned as indented JSON text.
func Result(data map[string]any) (*mcp.CallToolResult, error) {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("Failed to encode response: " + err.Error()), nil
	}

	if _, failed := data["error"]; failed {
		return mcp.NewToolResultError(string(encoded)), nil
	}

	return mcp.NewToolResultText(string(encoded)), nil
}
