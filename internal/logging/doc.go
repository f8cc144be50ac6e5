// Package logging provides structured logging utilities for the mcp-terraform-cloud application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Bearer token redaction for error messages and URLs
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "list_workspaces")
//	logger.Info("calling Terraform Cloud API",
//	    logging.Method("GET"),
//	    logging.Path("organizations/example/workspaces"))
//
// Redact credentials before logging or returning error text:
//
//	msg := logging.RedactToken(err.Error(), token)
//
// # Security Considerations
//
// Terraform Cloud API tokens are static bearer credentials. Transport errors
// may embed the request URL or headers verbatim, so every error string that
// could contain the token must pass through RedactToken before it leaves the
// client layer. Tokens are never logged directly; use SanitizeToken for a
// length-only representation.
package logging
