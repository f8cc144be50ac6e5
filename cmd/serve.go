package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-terraform-cloud/internal/filter"
	"github.com/giantswarm/mcp-terraform-cloud/internal/instrumentation"
	"github.com/giantswarm/mcp-terraform-cloud/internal/server"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tfc"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools/account"
	applytools "github.com/giantswarm/mcp-terraform-cloud/internal/tools/apply"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools/assessment"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools/costestimate"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools/organization"
	plantools "github.com/giantswarm/mcp-terraform-cloud/internal/tools/plan"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools/project"
	runtools "github.com/giantswarm/mcp-terraform-cloud/internal/tools/run"
	statetools "github.com/giantswarm/mcp-terraform-cloud/internal/tools/state"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools/variable"
	"github.com/giantswarm/mcp-terraform-cloud/internal/tools/workspace"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		tfcToken         string
		tfcAddress       string
		rawResponses     bool
		allowDestructive bool
		filterPolicyFile string
		debugMode        bool

		// Transport options
		transport       string
		httpAddr        string
		sseEndpoint     string
		messageEndpoint string
		httpEndpoint    string

		// Metrics server options
		enableMetricsServer bool
		metricsAddr         string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Terraform Cloud server",
		Long: `Start the MCP Terraform Cloud server to provide tools for interacting
with Terraform Cloud and Terraform Enterprise via the Model Context Protocol.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - sse: Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport

Authentication uses a Terraform Cloud API token, provided via the TFC_TOKEN
environment variable (or a .env file) or the --tfc-token flag. Terraform
Enterprise installations point --tfc-address (or TFC_ADDRESS) at their own
API endpoint.

Response filtering:
  API responses are filtered to remove noisy attributes before they reach the
  model. Pass --raw-responses to disable filtering process-wide, or
  --filter-policy-file to replace the built-in policy table.

Destructive operations:
  Delete and force tools are hidden by default. Pass --allow-destructive to
  register them and permit mutating handlers to run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags win; env vars fill the gaps.
			loadEnvIfEmpty(&tfcToken, tfc.EnvToken)
			loadEnvIfEmpty(&tfcAddress, tfc.EnvAddress)
			if !cmd.Flags().Changed("raw-responses") {
				rawResponses = tfc.ConfigFromEnv().RawResponses
			}

			config := ServeConfig{
				Transport:        transport,
				HTTPAddr:         httpAddr,
				SSEEndpoint:      sseEndpoint,
				MessageEndpoint:  messageEndpoint,
				HTTPEndpoint:     httpEndpoint,
				TFCToken:         tfcToken,
				TFCAddress:       tfcAddress,
				RawResponses:     rawResponses,
				AllowDestructive: allowDestructive,
				FilterPolicyFile: filterPolicyFile,
				DebugMode:        debugMode,
				Metrics: MetricsServeConfig{
					Enabled: enableMetricsServer,
					Addr:    metricsAddr,
				},
			}
			return runServe(config)
		},
	}

	// Terraform Cloud client flags
	cmd.Flags().StringVar(&tfcToken, "tfc-token", "", "Terraform Cloud API token (can also be set via TFC_TOKEN env var)")
	cmd.Flags().StringVar(&tfcAddress, "tfc-address", "", "Terraform Cloud API address including /api/v2 (can also be set via TFC_ADDRESS env var)")
	cmd.Flags().BoolVar(&rawResponses, "raw-responses", false, "Disable response filtering and return raw API responses (can also be set via TFC_RAW_RESPONSES env var)")
	cmd.Flags().BoolVar(&allowDestructive, "allow-destructive", false, "Register destructive tools (delete, force cancel, force unlock) and allow mutating operations")
	cmd.Flags().StringVar(&filterPolicyFile, "filter-policy-file", "", "Path to a YAML file overriding the built-in response filter policies")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging (default: false)")

	// Transport flags
	cmd.Flags().StringVar(&transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&sseEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&messageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	// Metrics flags
	cmd.Flags().BoolVar(&enableMetricsServer, "enable-metrics-server", false, "Serve Prometheus metrics on a dedicated port (requires instrumentation to be enabled)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Listen address for the dedicated metrics server")

	return cmd
}

// newServeLogger builds the process logger. Stdio transport must keep stdout
// clean for MCP framing, so logs always go to stderr.
func newServeLogger(debugMode bool) *slog.Logger {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// runServe contains the main server logic with support for multiple transports.
func runServe(config ServeConfig) error {
	if err := validateAPIAddress(config.TFCAddress); err != nil {
		return err
	}
	if err := validateEndpointPath(config.SSEEndpoint, "--sse-endpoint"); err != nil {
		return err
	}
	if err := validateEndpointPath(config.MessageEndpoint, "--message-endpoint"); err != nil {
		return err
	}
	if err := validateEndpointPath(config.HTTPEndpoint, "--http-endpoint"); err != nil {
		return err
	}

	logger := newServeLogger(config.DebugMode)
	slog.SetDefault(logger)

	// Setup graceful shutdown - listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize OpenTelemetry instrumentation provider
	instrumentationConfig := instrumentation.DefaultConfig()
	instrumentationConfig.ServiceVersion = rootCmd.Version
	instrumentationProvider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if shutdownErr := instrumentationProvider.Shutdown(context.Background()); shutdownErr != nil {
			if config.Transport != transportStdio {
				log.Printf("Error during instrumentation shutdown: %v", shutdownErr)
			}
		}
	}()

	if instrumentationProvider.Enabled() {
		logger.Info("OpenTelemetry instrumentation enabled",
			"metrics_exporter", instrumentationConfig.MetricsExporter,
			"tracing_exporter", instrumentationConfig.TracingExporter)
	}

	// Build the filtering engine, optionally from a policy file.
	policies := filter.DefaultPolicies()
	if config.FilterPolicyFile != "" {
		policies, err = filter.LoadPolicyFile(config.FilterPolicyFile)
		if err != nil {
			return fmt.Errorf("failed to load filter policy file: %w", err)
		}
		logger.Info("loaded filter policies", "file", config.FilterPolicyFile)
	}
	engine := filter.NewEngine(policies, logger)

	// Create the Terraform Cloud client. A missing token is not fatal here:
	// requests surface the remediation hint, and per-request tokens still work.
	tfcClient := tfc.NewClient(tfc.Config{
		Token:        config.TFCToken,
		Address:      config.TFCAddress,
		RawResponses: config.RawResponses,
		Logger:       logger,
	}, engine, tfc.WithMetrics(instrumentationProvider.Metrics()))

	logLevel := "info"
	if config.DebugMode {
		logLevel = "debug"
	}

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithTFCClient(tfcClient),
		server.WithLogger(logger),
		server.WithVersion(rootCmd.Version),
		server.WithNonDestructiveMode(!config.AllowDestructive),
		server.WithRawResponses(config.RawResponses),
		server.WithLogLevel(logLevel),
		server.WithInstrumentationProvider(instrumentationProvider),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			// Only log shutdown errors for non-stdio transports to avoid output interference
			if config.Transport != transportStdio {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	if config.AllowDestructive {
		logger.Warn("destructive operations enabled: delete and force tools are registered")
	}

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("mcp-terraform-cloud", rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := registerToolsets(mcpSrv, serverContext); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch config.Transport {
	case transportStdio:
		// Don't print startup message for stdio mode as it interferes with MCP communication
		return runStdioServer(mcpSrv)
	case transportSSE:
		fmt.Printf("Starting MCP Terraform Cloud server with %s transport...\n", config.Transport)
		return runSSEServer(mcpSrv, config.HTTPAddr, config.SSEEndpoint, config.MessageEndpoint, shutdownCtx, config.DebugMode)
	case transportStreamableHTTP:
		fmt.Printf("Starting MCP Terraform Cloud server with %s transport...\n", config.Transport)
		return runStreamableHTTPServer(mcpSrv, config.HTTPAddr, config.HTTPEndpoint, shutdownCtx, instrumentationProvider, serverContext, config.Metrics)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, streamable-http)", config.Transport)
	}
}

// registerToolsets registers every tool category with the MCP server.
func registerToolsets(mcpSrv *mcpserver.MCPServer, sc *server.ServerContext) error {
	registrations := []struct {
		name     string
		register func(*mcpserver.MCPServer, *server.ServerContext) error
	}{
		{"account", account.RegisterAccountTools},
		{"organization", organization.RegisterOrganizationTools},
		{"project", project.RegisterProjectTools},
		{"workspace", workspace.RegisterWorkspaceTools},
		{"run", runtools.RegisterRunTools},
		{"variable", variable.RegisterVariableTools},
		{"plan", plantools.RegisterPlanTools},
		{"apply", applytools.RegisterApplyTools},
		{"state", statetools.RegisterStateTools},
		{"assessment", assessment.RegisterAssessmentTools},
		{"cost estimate", costestimate.RegisterCostEstimateTools},
	}

	for _, r := range registrations {
		if err := r.register(mcpSrv, sc); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", r.name, err)
		}
	}
	return nil
}
