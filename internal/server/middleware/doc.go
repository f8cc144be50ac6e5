// Package middleware provides HTTP middleware for the MCP Terraform Cloud server.
// These middleware functions handle security headers, CORS, request metrics,
// and other cross-cutting concerns on the SSE and streamable HTTP transports.
package middleware
