package tfc

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DefaultAddress is the public Terraform Cloud v2 API endpoint. Private
// Terraform Enterprise instances override it via configuration.
const DefaultAddress = "https://app.terraform.io/api/v2"

// Environment variable names consumed by ConfigFromEnv.
const (
	EnvToken        = "TFC_TOKEN"
	EnvAddress      = "TFC_ADDRESS"
	EnvRawResponses = "TFC_RAW_RESPONSES"
)

// Config holds the client configuration. It is constructed once at process
// start and passed into NewClient; nothing in this package reads the
// environment after startup.
type Config struct {
	// Token is the static bearer credential for the Terraform Cloud API.
	// Individual requests may override it.
	Token string

	// Address is the API base address including the /api/v2 prefix.
	// Defaults to DefaultAddress.
	Address string

	// RawResponses disables response filtering process-wide when true.
	RawResponses bool

	// Logger receives transport-level log records. Defaults to slog.Default().
	Logger *slog.Logger
}

// ConfigFromEnv builds a Config from the TFC_* environment variables.
// It is the only place this package touches the environment, and callers
// invoke it explicitly during startup.
func ConfigFromEnv() Config {
	raw := false
	if v := os.Getenv(EnvRawResponses); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			raw = parsed
		}
	}
	return Config{
		Token:        os.Getenv(EnvToken),
		Address:      os.Getenv(EnvAddress),
		RawResponses: raw,
	}
}

// withDefaults returns a copy of the config with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	c.Address = strings.TrimRight(c.Address, "/")
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
