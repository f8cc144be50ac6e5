// Package filter implements response filtering for Terraform Cloud API
// responses returned to MCP clients.
//
// Terraform Cloud responses are JSON:API envelopes that carry a lot of
// navigational and statistical payload an MCP client never needs. The engine
// in this package trims those responses to reduce token usage while
// preserving fields required for audit, compliance, and relationship
// traversal.
//
// Filtering is policy-table-driven: each resource type has an immutable
// Policy listing the attribute fields to drop (always, on single-resource
// reads, or on list responses) and an optional allow-list of essential
// relationships. The tables are built once at startup and are safe for
// unlimited concurrent readers.
//
// Filtering is a best-effort size optimization, never a correctness
// requirement: any internal failure is recovered and the original,
// unfiltered envelope is returned.
package filter
