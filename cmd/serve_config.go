package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// shutdownTimeout bounds graceful shutdown of HTTP transports.
const shutdownTimeout = 30 * time.Second

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Terraform Cloud client settings
	TFCToken   string
	TFCAddress string

	// RawResponses disables response filtering process-wide.
	RawResponses bool

	// AllowDestructive disables non-destructive mode, registering delete and
	// force tools and letting mutating handlers through.
	AllowDestructive bool

	// FilterPolicyFile optionally overrides the built-in filter policy table.
	FilterPolicyFile string

	DebugMode bool

	// Metrics server configuration
	Metrics MetricsServeConfig
}

// MetricsServeConfig holds configuration for the dedicated metrics server.
type MetricsServeConfig struct {
	Enabled bool
	Addr    string
}

// loadEnvIfEmpty loads an environment variable into a string pointer if it's empty.
func loadEnvIfEmpty(target *string, envKey string) {
	if *target == "" {
		*target = os.Getenv(envKey)
	}
}

// validateAPIAddress validates the Terraform Cloud API address. The address
// must be an absolute http(s) URL with a hostname; anything else would
// produce confusing transport errors deep inside the client.
func validateAPIAddress(address string) error {
	if address == "" {
		// Empty means the client default (public Terraform Cloud).
		return nil
	}

	parsed, err := url.Parse(address)
	if err != nil {
		return fmt.Errorf("TFC address must be a valid URL: %w", err)
	}

	switch parsed.Scheme {
	case "https":
	case "http":
		// Allowed for local development and tests against mock servers.
	case "":
		return fmt.Errorf("TFC address must be a valid URL with an http or https scheme")
	default:
		return fmt.Errorf("TFC address must use http or https (got: %s)", parsed.Scheme)
	}

	if parsed.Hostname() == "" {
		return fmt.Errorf("TFC address must have a valid hostname")
	}

	return nil
}

// validateEndpointPath ensures an HTTP endpoint path is absolute.
func validateEndpointPath(path, flagName string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%s must start with '/' (got: %s)", flagName, path)
	}
	return nil
}
