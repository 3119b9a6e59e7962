package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/iceland-registry-mcp-server/internal/gervigogn"
	"github.com/olgasafonova/iceland-registry-mcp-server/internal/kennitala"
	"github.com/olgasafonova/iceland-registry-mcp-server/metrics"
	"github.com/olgasafonova/iceland-registry-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	kennitala *kennitala.Service
	dataset   *gervigogn.Service
	logger    *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(kt *kennitala.Service, dataset *gervigogn.Service, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		kennitala: kt,
		dataset:   dataset,
		logger:    logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "Validate":
		register(h, server, tool, spec, h.kennitala.ValidateMCP)
	case "Parse":
		register(h, server, tool, spec, h.kennitala.ParseMCP)
	case "Format":
		register(h, server, tool, spec, h.kennitala.FormatMCP)
	case "Mask":
		register(h, server, tool, spec, h.kennitala.MaskMCP)
	case "GeneratePersonal":
		register(h, server, tool, spec, h.kennitala.GeneratePersonalMCP)
	case "GenerateCompany":
		register(h, server, tool, spec, h.kennitala.GenerateCompanyMCP)
	case "ValidateDataset":
		register(h, server, tool, spec, h.dataset.ValidateDatasetMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the service method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details. Raw kennitala arguments are
// masked before they reach the log.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case kennitala.ValidateArgs:
		attrs = append(attrs, "kennitala", logSafe(a.Kennitala))
	case kennitala.ParseArgs:
		attrs = append(attrs, "kennitala", logSafe(a.Kennitala))
	case kennitala.FormatArgs:
		attrs = append(attrs, "kennitala", logSafe(a.Kennitala))
	case kennitala.MaskArgs:
		attrs = append(attrs, "kennitala", logSafe(a.Kennitala))
	case kennitala.GenerateArgs:
		if a.Date != "" {
			attrs = append(attrs, "date", a.Date)
		}
		if a.Start != "" {
			attrs = append(attrs, "start", a.Start, "end", a.End)
		}
	case gervigogn.ValidateDatasetArgs:
		attrs = append(attrs, "path", a.Path)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case kennitala.ValidateResult:
		attrs = append(attrs, "strict", r.Strict, "relaxed", r.Relaxed)
	case kennitala.ParseResult:
		attrs = append(attrs, "entity_type", r.EntityType)
	case kennitala.GenerateResult:
		attrs = append(attrs, "count", len(r.Kennitolur), "entity_type", r.EntityType)
	case gervigogn.ValidateDatasetResult:
		attrs = append(attrs, "records", r.Records, "relaxed_valid", r.RelaxedValid, "strict_valid", r.StrictValid)
	}

	h.logger.Info("Tool executed", attrs...)
}

// logSafe masks a kennitala argument down to its last four digits so full
// national IDs never land in the server log.
func logSafe(value string) string {
	masked, err := kennitala.Mask(value, 4)
	if err != nil {
		return "<invalid>"
	}
	return masked
}
