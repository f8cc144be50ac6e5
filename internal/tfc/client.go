package tfc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/giantswarm/mcp-terraform-cloud/internal/filter"
	"github.com/giantswarm/mcp-terraform-cloud/internal/logging"
)

// contentTypeJSONAPI is the media type the Terraform Cloud API requires.
const contentTypeJSONAPI = "application/vnd.api+json"

// errMissingToken matches the message callers of the original server relied
// on, so operators get the same remediation hint.
const errMissingToken = "Token is required. Please set the TFC_TOKEN environment variable."

// errMissingLocation is returned when the API answers with a redirect status
// but no Location header.
const errMissingLocation = "Redirect received, but no Location header provided."

// MetricsRecorder receives per-request observability signals. The
// instrumentation provider implements it; a nil recorder is a no-op.
type MetricsRecorder interface {
	RecordAPIRequest(ctx context.Context, method, resourceType, status string, duration time.Duration)
	RecordResponseFiltered(ctx context.Context, resourceType, operation string)
}

// Client issues requests against the Terraform Cloud API and post-processes
// responses through the filtering engine. A Client is immutable after
// construction and safe for concurrent use; the underlying HTTP client is
// scoped to a single Request call.
type Client struct {
	config  Config
	engine  *filter.Engine
	logger  *slog.Logger
	metrics MetricsRecorder
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithMetrics attaches a metrics recorder to the client.
func WithMetrics(recorder MetricsRecorder) ClientOption {
	return func(c *Client) {
		c.metrics = recorder
	}
}

// NewClient creates a Client. A nil engine selects a filtering engine with
// the default policy table.
func NewClient(config Config, engine *filter.Engine, opts ...ClientOption) *Client {
	config = config.withDefaults()
	if engine == nil {
		engine = filter.NewEngine(nil, config.Logger)
	}
	c := &Client{
		config: config,
		engine: engine,
		logger: config.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOptions describes one API call. The zero value of every field is a
// sensible default: GET, config token, no params, no body.
type RequestOptions struct {
	// Path is the API path relative to the configured address, or a complete
	// URL when AbsoluteURL is set (pre-signed storage URLs arrive absolute).
	Path string

	// Method is the HTTP method; empty means GET.
	Method string

	// Token overrides the configured bearer token for this request.
	Token string

	// Params are query parameters, typically built by QueryParams.
	Params map[string]string

	// Body is the JSON request body for POST/PATCH calls, and for the DELETE
	// relationship endpoints that name the resources to detach.
	Body map[string]any

	// AbsoluteURL treats Path as a complete URL instead of an API path.
	AbsoluteURL bool

	// AcceptText returns the raw response body as {"content": ...} instead
	// of decoding JSON. Log and state downloads are not JSON and must not be
	// parsed as such.
	AcceptText bool

	// RawResponse skips response filtering for this request.
	RawResponse bool

	// ReturnRedirectURL returns {"redirect-url": ...} instead of following a
	// redirect. Some pre-signed endpoints embed signature tokens in the
	// Location query string and are better handed back to the caller.
	ReturnRedirectURL bool
}

// Request performs one Terraform Cloud API call, following an authenticated
// redirect at most one level deep, and returns the decoded (and, for
// eligible GET responses, filtered) body. Request never returns a Go error:
// every failure mode resolves to a map with an "error" key.
func (c *Client) Request(ctx context.Context, opts RequestOptions) map[string]any {
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}

	token := opts.Token
	if token == "" {
		token = c.config.Token
	}
	if token == "" {
		return map[string]any{"error": errMissingToken}
	}

	requestURL, err := c.buildURL(opts)
	if err != nil {
		return c.errorResult("Unexpected error", err, token)
	}

	var bodyBytes []byte
	if opts.Body != nil && (method == http.MethodPost || method == http.MethodPatch || method == http.MethodDelete) {
		bodyBytes, err = json.Marshal(opts.Body)
		if err != nil {
			return c.errorResult("Unexpected error", err, token)
		}
	}

	logger := logging.WithRequestID(c.logger, uuid.NewString())

	// The HTTP client lives for exactly one Request call. Automatic redirect
	// following is disabled: the default policy drops the Authorization
	// header, and pre-signed storage URLs still require it.
	httpClient := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	defer httpClient.CloseIdleConnections()

	start := time.Now()
	status, rawBody, result := c.roundTrip(ctx, httpClient, logger, method, requestURL, token, bodyBytes, opts, true)

	logger.Debug("API request complete",
		logging.Method(method),
		logging.Path(opts.Path),
		logging.StatusCode(status),
		slog.Duration(logging.KeyDuration, time.Since(start)))

	if result != nil {
		// roundTrip already produced a terminal result (error, text, 204,
		// or redirect-url).
		c.recordRequest(ctx, method, opts.Path, rawBody, result, time.Since(start))
		return result
	}

	result = c.decodeAndFilter(ctx, logger, method, opts, status, rawBody, token)
	c.recordRequest(ctx, method, opts.Path, rawBody, result, time.Since(start))
	return result
}

// roundTrip executes one HTTP exchange and, when the response is a
// redirect, re-issues a single authenticated GET to the Location target.
// It returns either a terminal result map, or (status, body, nil) for the
// caller to decode.
func (c *Client) roundTrip(
	ctx context.Context,
	httpClient *http.Client,
	logger *slog.Logger,
	method, requestURL, token string,
	body []byte,
	opts RequestOptions,
	followRedirect bool,
) (int, []byte, map[string]any) {
	req, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(body))
	if err != nil {
		return 0, nil, c.errorResult("Unexpected error", err, token)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentTypeJSONAPI)

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, nil, c.errorResult("Network error", err, token)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, c.errorResult("Network error", err, token)
	}

	if isRedirect(resp.StatusCode) && followRedirect {
		location := resp.Header.Get("Location")
		if location == "" {
			return resp.StatusCode, nil, map[string]any{"error": errMissingLocation}
		}
		if opts.ReturnRedirectURL {
			return resp.StatusCode, nil, map[string]any{"redirect-url": location}
		}

		logger.Debug("following redirect", logging.StatusCode(resp.StatusCode))

		// The follow-up is always a GET carrying the original headers; the
		// pre-signed target requires the same bearer credential. Redirects
		// are followed one level deep only.
		return c.roundTrip(ctx, httpClient, logger, http.MethodGet, location, token, nil, opts, false)
	}

	return resp.StatusCode, raw, nil
}

// decodeAndFilter turns a completed HTTP exchange into the caller-visible
// result map, applying the filtering engine where eligible.
func (c *Client) decodeAndFilter(
	ctx context.Context,
	logger *slog.Logger,
	method string,
	opts RequestOptions,
	status int,
	rawBody []byte,
	token string,
) map[string]any {
	if status < 200 || status >= 300 {
		message := fmt.Sprintf("API request failed: %d", status)
		var details any
		if err := json.Unmarshal(rawBody, &details); err == nil {
			return map[string]any{"error": message, "details": details}
		}
		return map[string]any{"error": message}
	}

	if status == http.StatusNoContent {
		return map[string]any{"status": "success", "status_code": http.StatusNoContent}
	}

	if opts.AcceptText {
		return map[string]any{"content": string(rawBody)}
	}

	var decoded any
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return c.errorResult("Failed to parse JSON response", err, token)
	}

	envelope, ok := decoded.(map[string]any)
	if !ok {
		// Callers always receive an object.
		envelope = map[string]any{"data": decoded}
	}

	if opts.RawResponse || c.config.RawResponses {
		return envelope
	}
	if !filter.ShouldFilter(opts.Path, method) {
		return envelope
	}

	resourceType := filter.DetectResourceType(opts.Path, rawBody)
	operation := filter.DetectOperation(opts.Path, method)

	filtered := c.engine.Apply(envelope, resourceType, operation)
	if c.metrics != nil {
		c.metrics.RecordResponseFiltered(ctx, string(resourceType), string(operation))
	}
	logger.Debug("response filtered",
		logging.ResourceType(string(resourceType)),
		logging.Operation(string(operation)))

	return filtered
}

// buildURL resolves the request URL and attaches query parameters.
func (c *Client) buildURL(opts RequestOptions) (string, error) {
	raw := opts.Path
	if !opts.AbsoluteURL {
		raw = c.config.Address + "/" + strings.TrimPrefix(opts.Path, "/")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid request URL: %w", err)
	}

	if len(opts.Params) > 0 {
		query := parsed.Query()
		for k, v := range opts.Params {
			query.Set(k, v)
		}
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

// errorResult formats a failure as the caller-visible error map, redacting
// the bearer token from the detail text. Transport errors embed the request
// URL verbatim, which may carry pre-signed credentials.
func (c *Client) errorResult(prefix string, err error, token string) map[string]any {
	detail := logging.RedactToken(err.Error(), token)
	return map[string]any{"error": prefix + ": " + detail}
}

// recordRequest emits API request metrics when a recorder is attached.
func (c *Client) recordRequest(ctx context.Context, method, path string, rawBody []byte, result map[string]any, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	status := logging.StatusSuccess
	if _, failed := result["error"]; failed {
		status = logging.StatusError
	}
	resourceType := filter.DetectResourceType(path, rawBody)
	c.metrics.RecordAPIRequest(ctx, method, string(resourceType), status, duration)
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}
