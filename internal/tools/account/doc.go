// Package account implements MCP tools for the Terraform Cloud account API.
package account
