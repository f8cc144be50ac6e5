// Package tools provides shared utilities for MCP tool handlers.
package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
)

// CheckMutatingOperation verifies if a destructive operation is allowed given the
// current server configuration. Returns an error result if blocked, nil if allowed.
//
// Only delete handlers and the force variants (force unlock, force cancel,
// force execute) call this; ordinary create, update, and lifecycle operations
// are always available. The operation name is echoed in the error message.
func CheckMutatingOperation(sc *server.ServerContext, operation string) *mcp.CallToolResult {
	config := sc.Config()
	if !config.NonDestructiveMode {
		return nil
	}

	return mcp.NewToolResultError(fmt.Sprintf(
		"%s operations are not allowed in non-destructive mode (start the server with --allow-destructive to enable them)",
		cases.Title(language.English).String(operation),
	))
}
