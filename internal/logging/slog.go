package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyTool         = "tool"
	KeyMethod       = "method"
	KeyPath         = "path"
	KeyStatusCode   = "status_code"
	KeyStatus       = "status"
	KeyError        = "error"
	KeyRequestID    = "request_id"
	KeyResourceType = "resource_type"
	KeyOperation    = "operation"
	KeyDuration     = "duration"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RedactedPlaceholder replaces bearer tokens in error messages.
const RedactedPlaceholder = "[REDACTED]"

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// WithRequestID returns a logger with the request correlation ID set.
func WithRequestID(logger *slog.Logger, id string) *slog.Logger {
	return logger.With(slog.String(KeyRequestID, id))
}

// Tool returns a slog attribute for the MCP tool name.
func Tool(name string) slog.Attr {
	return slog.String(KeyTool, name)
}

// Method returns a slog attribute for the HTTP method.
func Method(method string) slog.Attr {
	return slog.String(KeyMethod, method)
}

// Path returns a slog attribute for the API path.
func Path(path string) slog.Attr {
	return slog.String(KeyPath, path)
}

// StatusCode returns a slog attribute for the HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int(KeyStatusCode, code)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// ResourceType returns a slog attribute for the detected resource type.
func ResourceType(rt string) slog.Attr {
	return slog.String(KeyResourceType, rt)
}

// Operation returns a slog attribute for the detected operation kind.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Err returns a slog attribute for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// RedactedErr returns a slog attribute for an error with the bearer token
// redacted. Use this for any error originating from the transport layer,
// which may embed the request URL or headers verbatim.
func RedactedErr(err error, token string) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, RedactToken(err.Error(), token))
}

// RedactToken replaces every occurrence of token in message with a
// placeholder. An empty token leaves the message untouched.
func RedactToken(message, token string) string {
	if token == "" {
		return message
	}
	return strings.ReplaceAll(message, token, RedactedPlaceholder)
}

// SanitizeToken returns a masked version of a token for logging.
// It returns a length indicator without exposing any token content,
// as even partial token prefixes can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}
