package middleware

import (
	"net/http"
	"regexp"
	"time"

	"github.com/giantswarm/mcp-terraform-cloud/internal/instrumentation"
)

// statusRecorder wraps http.ResponseWriter to capture the status code for
// the http_requests_total and http_request_duration_seconds series.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code written; later calls pass
// through but do not change the recorded value.
func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying ResponseWriter so http.ResponseController
// can reach http.Flusher and friends.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// Flush implements http.Flusher. The streamable HTTP transport flushes
// after every SSE event, so this must not panic on plain writers.
func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// HTTPMetrics records request counts and latencies for the MCP HTTP
// transport endpoints (/mcp, /healthz, /readyz, /metrics).
//
// Paths are reduced to a bounded label set before recording: MCP session
// endpoints collapse to /mcp/:session, and identifiers that leak into
// paths (UUIDs, Terraform Cloud external IDs like ws-abc123 or
// run-abc123, bare numeric IDs) are replaced with placeholders.
//
// A nil or disabled provider turns the middleware into a pass-through.
func HTTPMetrics(provider *instrumentation.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if provider == nil || !provider.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			recorder := newStatusRecorder(w)

			next.ServeHTTP(recorder, r)

			provider.Metrics().RecordHTTPRequest(
				r.Context(),
				r.Method,
				normalizePath(r.URL.Path),
				recorder.statusCode,
				time.Since(start),
			)
		})
	}
}

var (
	// MCP streamable HTTP session endpoints, e.g. /mcp/abc123xyz.
	sessionIDPattern = regexp.MustCompile(`^/mcp/[a-zA-Z0-9_-]{8,64}$`)

	uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

	// Terraform Cloud external IDs: a short type prefix and a random
	// suffix (ws-abc123, run-abc123, prj-abc123, varset-abc123, ...).
	tfcIDPattern = regexp.MustCompile(`/(?:ws|run|prj|org|var|varset|apply|plan|cv|sv|pol|drp)-[a-zA-Z0-9]{4,}(/|$)`)

	numericIDPattern = regexp.MustCompile(`/\d+(/|$)`)
)

// normalizePath replaces dynamic path segments with placeholders so the
// per-path metric series stay bounded.
func normalizePath(path string) string {
	if sessionIDPattern.MatchString(path) {
		return "/mcp/:session"
	}

	path = uuidPattern.ReplaceAllString(path, ":uuid")
	path = tfcIDPattern.ReplaceAllString(path, "/:external-id$1")
	path = numericIDPattern.ReplaceAllString(path, "/:id$1")

	return path
}
