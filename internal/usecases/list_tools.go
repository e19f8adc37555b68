package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ListTools defines the interface for listing the aggregated tool catalog.
type ListTools interface {
	Query(ctx context.Context, providerID string) []domain.ToolDescriptor
}

// ListToolsImpl is the implementation of the ListTools use case.
type ListToolsImpl struct {
	catalog domain.ToolCatalog
}

// NewListToolsImpl creates a new instance of ListToolsImpl.
func NewListToolsImpl(catalog domain.ToolCatalog) ListToolsImpl {
	return ListToolsImpl{catalog: catalog}
}

// Query returns the whole catalog, or the tools of one provider when providerID is set.
func (lt ListToolsImpl) Query(ctx context.Context, providerID string) []domain.ToolDescriptor {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("provider.id", providerID),
	))
	defer span.End()

	tools := lt.catalog.ListTools(providerID)
	span.SetAttributes(attribute.Int("tools.count", len(tools)))
	return tools
}

// InitListTools is the initializer for the ListTools use case.
type InitListTools struct {
	Catalog domain.ToolCatalog `resolve:""`
}

// Initialize registers the ListTools use case in the dependency container.
func (i InitListTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTools](NewListToolsImpl(i.Catalog))
	return ctx, nil
}
