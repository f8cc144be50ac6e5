package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeCmdProperties(t *testing.T) {
	cmd := newServeCmd()

	assert.Equal(t, "serve", cmd.Use)
	assert.Equal(t, "Start the MCP Terraform Cloud server", cmd.Short)
	assert.True(t, strings.Contains(cmd.Long, "Model Context Protocol"))
	assert.True(t, strings.Contains(cmd.Long, "stdio"))
	assert.True(t, strings.Contains(cmd.Long, "sse"))
	assert.True(t, strings.Contains(cmd.Long, "streamable-http"))
	assert.True(t, strings.Contains(cmd.Long, "TFC_TOKEN"))
}

func TestServeCmdFlags(t *testing.T) {
	cmd := newServeCmd()

	// Test that all expected flags exist
	flagNames := []string{
		"tfc-token",
		"tfc-address",
		"raw-responses",
		"allow-destructive",
		"filter-policy-file",
		"debug",
		"transport",
		"http-addr",
		"sse-endpoint",
		"message-endpoint",
		"http-endpoint",
		"enable-metrics-server",
		"metrics-addr",
	}

	for _, flagName := range flagNames {
		flag := cmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "Flag %s should exist", flagName)
	}
}

func TestServeCmdFlagDefaults(t *testing.T) {
	cmd := newServeCmd()

	// Test flag default values
	tests := []struct {
		flagName string
		expected string
	}{
		{"tfc-token", ""},
		{"tfc-address", ""},
		{"raw-responses", "false"},
		{"allow-destructive", "false"},
		{"debug", "false"},
		{"transport", "stdio"},
		{"http-addr", ":8080"},
		{"sse-endpoint", "/sse"},
		{"message-endpoint", "/message"},
		{"http-endpoint", "/mcp"},
		{"enable-metrics-server", "false"},
		{"metrics-addr", ":9090"},
	}

	for _, test := range tests {
		flag := cmd.Flags().Lookup(test.flagName)
		assert.Equal(t, test.expected, flag.DefValue,
			"Flag %s should have default value %s", test.flagName, test.expected)
	}
}

func TestServeCmdTransportValidation(t *testing.T) {
	tests := []struct {
		name        string
		transport   string
		expectError bool
	}{
		{
			name:        "valid stdio transport",
			transport:   "stdio",
			expectError: false,
		},
		{
			name:        "valid sse transport",
			transport:   "sse",
			expectError: false,
		},
		{
			name:        "valid streamable-http transport",
			transport:   "streamable-http",
			expectError: false,
		},
		{
			name:        "invalid transport",
			transport:   "invalid",
			expectError: true,
		},
		{
			name:        "empty transport",
			transport:   "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validTransports := map[string]bool{
				transportStdio:          true,
				transportSSE:            true,
				transportStreamableHTTP: true,
			}

			isValid := validTransports[tt.transport]

			if tt.expectError {
				assert.False(t, isValid, "Transport %s should be invalid", tt.transport)
			} else {
				assert.True(t, isValid, "Transport %s should be valid", tt.transport)
			}
		})
	}
}

func TestServeCmdFlagUsage(t *testing.T) {
	cmd := newServeCmd()

	// Test that help text contains transport information
	usage := cmd.UsageString()
	assert.Contains(t, usage, "--transport")
	assert.Contains(t, usage, "stdio, sse, or streamable-http")
}

func TestServeCmdTransportSpecificFlags(t *testing.T) {
	cmd := newServeCmd()

	// Test that HTTP-related flags have appropriate descriptions
	httpAddrFlag := cmd.Flags().Lookup("http-addr")
	assert.Contains(t, httpAddrFlag.Usage, "HTTP server address")
	assert.Contains(t, httpAddrFlag.Usage, "sse and streamable-http")

	sseEndpointFlag := cmd.Flags().Lookup("sse-endpoint")
	assert.Contains(t, sseEndpointFlag.Usage, "SSE endpoint path")
	assert.Contains(t, sseEndpointFlag.Usage, "sse transport")

	messageEndpointFlag := cmd.Flags().Lookup("message-endpoint")
	assert.Contains(t, messageEndpointFlag.Usage, "Message endpoint path")
	assert.Contains(t, messageEndpointFlag.Usage, "sse transport")

	httpEndpointFlag := cmd.Flags().Lookup("http-endpoint")
	assert.Contains(t, httpEndpointFlag.Usage, "HTTP endpoint path")
	assert.Contains(t, httpEndpointFlag.Usage, "streamable-http transport")
}

func TestServeCmdTokenFlags(t *testing.T) {
	cmd := newServeCmd()

	tokenFlag := cmd.Flags().Lookup("tfc-token")
	assert.Contains(t, tokenFlag.Usage, "TFC_TOKEN")

	addressFlag := cmd.Flags().Lookup("tfc-address")
	assert.Contains(t, addressFlag.Usage, "TFC_ADDRESS")
}
