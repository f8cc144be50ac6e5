// Package tfc implements the Terraform Cloud API client used by all MCP
// tool handlers.
//
// The package deliberately does not model the Terraform Cloud domain: every
// resource is an opaque JSON:API document. Tool handlers translate their
// typed parameters into a RequestOptions value, call Client.Request, and
// return the resulting map to the MCP client unmodified. Failures never
// surface as Go errors from Request; every failure mode resolves to a map
// carrying an "error" key, which keeps the ~50 tool handlers trivially
// uniform.
//
// Two behaviors set this client apart from a generic HTTP wrapper:
//
//   - Redirect handling. Terraform Cloud serves large content (logs, state,
//     plan JSON) through 3xx redirects to pre-signed storage URLs that still
//     require the caller's bearer credential. The default Go redirect policy
//     would drop the Authorization header, so redirects are followed
//     manually, exactly one level deep, forwarding the original headers.
//
//   - Response filtering. Successful GET responses pass through the
//     filtering engine in internal/filter to trim payload size before they
//     reach the MCP client.
//
// API tokens are static bearer credentials; any error text that could embed
// the request URL or headers is redacted before it leaves this package.
package tfc
