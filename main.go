// Iceland Registry MCP Server - A Model Context Protocol server for Icelandic
// kennitölur (national IDs). Provides tools for validating, parsing, masking,
// and generating kennitölur, and for bulk-validating Þjóðskrá gervigögn
// synthetic datasets.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/iceland-registry-mcp-server/internal/gervigogn"
	"github.com/olgasafonova/iceland-registry-mcp-server/internal/kennitala"
	"github.com/olgasafonova/iceland-registry-mcp-server/tools"
	"github.com/olgasafonova/iceland-registry-mcp-server/tracing"
)

const (
	ServerName    = "iceland-registry-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to shutdown tracing", "error", err)
		}
	}()

	// Create services
	ktService := kennitala.NewService(logger, newGenerator(logger))
	dsService := gervigogn.NewService(logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Iceland Registry MCP Server provides tools for working with Icelandic kennitölur (national IDs).

Available tools:
- iceland_validate_kennitala: Check validity under strict (check digit) and relaxed policies
- iceland_parse_kennitala: Decode birth date, century, and entity type
- iceland_format_kennitala: Render the canonical DDMMYY-NNNX form
- iceland_mask_kennitala: Partially hide an ID for safe display
- iceland_generate_personal: Generate synthetic personal kennitölur (test data only)
- iceland_generate_company: Generate synthetic company kennitölur (test data only)
- iceland_validate_dataset: Bulk-validate a Þjóðskrá gervigögn XML file

Generated IDs are synthetic and must never be treated as belonging to real people.

Configure via environment variables:
- KENNITALA_SEED: Integer seed for deterministic generation (default: time-based)
- OTEL_ENABLED / OTEL_EXPORTER_OTLP_ENDPOINT: Enable OpenTelemetry tracing`,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(ktService, dsService, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting Iceland Registry MCP Server",
		"name", ServerName,
		"version", ServerVersion,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// newGenerator builds the kennitala generator, seeded from KENNITALA_SEED
// when set so test runs can be reproduced.
func newGenerator(logger *slog.Logger) *kennitala.Generator {
	raw := os.Getenv("KENNITALA_SEED")
	if raw == "" {
		return kennitala.NewGenerator(nil)
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		logger.Warn("Ignoring invalid KENNITALA_SEED", "value", raw, "error", err)
		return kennitala.NewGenerator(nil)
	}
	logger.Info("Using seeded kennitala generator", "seed", seed)
	return kennitala.NewSeededGenerator(seed)
}
