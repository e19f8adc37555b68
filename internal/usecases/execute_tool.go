package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ExecuteTool defines the interface for calling a tool directly with complete arguments.
type ExecuteTool interface {
	Execute(ctx context.Context, providerID, name string, args map[string]any) (domain.ToolResult, error)
}

// ExecuteToolImpl is the implementation of the ExecuteTool use case.
type ExecuteToolImpl struct {
	catalog domain.ToolCatalog
}

// NewExecuteToolImpl creates a new instance of ExecuteToolImpl.
func NewExecuteToolImpl(catalog domain.ToolCatalog) ExecuteToolImpl {
	return ExecuteToolImpl{catalog: catalog}
}

// Execute validates the arguments against the tool schema and routes the call.
// An empty providerID addresses the unqualified name.
func (et ExecuteToolImpl) Execute(ctx context.Context, providerID, name string, args map[string]any) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("provider.id", providerID),
		attribute.String("tool.name", name),
	))
	defer span.End()

	var (
		tool domain.ToolDescriptor
		ok   bool
	)
	if providerID == "" {
		tool, ok = et.catalog.Lookup(name)
	} else {
		tool, ok = et.catalog.LookupOn(providerID, name)
	}
	if !ok {
		err := fmt.Errorf("%w: %q", domain.ErrToolNotFound, name)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}

	if args == nil {
		args = map[string]any{}
	}
	if err := tool.ValidateArguments(args); telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, err
	}

	result, err := et.catalog.ExecuteOn(spanCtx, tool.ProviderID, tool.Name, args)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, err
	}
	return result, nil
}

// InitExecuteTool is the initializer for the ExecuteTool use case.
type InitExecuteTool struct {
	Catalog domain.ToolCatalog `resolve:""`
}

// Initialize registers the ExecuteTool use case in the dependency container.
func (i InitExecuteTool) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExecuteTool](NewExecuteToolImpl(i.Catalog))
	return ctx, nil
}
