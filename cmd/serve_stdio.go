package cmd

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// runStdioServer serves MCP over stdin/stdout. This is the transport MCP
// clients spawn the binary with, so nothing may be printed to stdout: the
// stream carries only JSON-RPC frames, and diagnostics go to stderr via
// the logger. ServeStdio blocks until stdin closes or the client
// disconnects.
func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	if err := mcpserver.ServeStdio(mcpSrv); err != nil {
		return fmt.Errorf("stdio transport stopped: %w", err)
	}
	return nil
}
