package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// RefreshToolCatalog defines the interface for re-running provider discovery
type RefreshToolCatalog interface {
	// Execute re-discovers every provider and swaps in the rebuilt catalog
	Execute(ctx context.Context) error
}

// RefreshToolCatalogImpl implements RefreshToolCatalog
type RefreshToolCatalogImpl struct {
	Refresher domain.ToolCatalogRefresher `resolve:""`
	Catalog   domain.ToolCatalog          `resolve:""`
	Logger    *log.Logger                 `resolve:""`
}

// NewRefreshToolCatalogImpl creates a new instance
func NewRefreshToolCatalogImpl(refresher domain.ToolCatalogRefresher, catalog domain.ToolCatalog, logger *log.Logger) RefreshToolCatalogImpl {
	return RefreshToolCatalogImpl{
		Refresher: refresher,
		Catalog:   catalog,
		Logger:    logger,
	}
}

// Execute re-runs discovery and reports the size of the new catalog
func (r RefreshToolCatalogImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	before := len(r.Catalog.ListTools(""))
	if err := r.Refresher.Refresh(spanCtx); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	after := len(r.Catalog.ListTools(""))

	span.SetAttributes(
		attribute.Int("tools.before", before),
		attribute.Int("tools.after", after),
	)
	if before != after {
		r.Logger.Printf("RefreshToolCatalog: catalog changed from %d to %d tools", before, after)
	}
	return nil
}

// InitRefreshToolCatalog is used to initialize the RefreshToolCatalog in the dependency container
type InitRefreshToolCatalog struct {
	Refresher domain.ToolCatalogRefresher `resolve:""`
	Catalog   domain.ToolCatalog          `resolve:""`
	Logger    *log.Logger                 `resolve:""`
}

// Initialize registers the RefreshToolCatalog implementation in the dependency container
func (i InitRefreshToolCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefreshToolCatalog](NewRefreshToolCatalogImpl(i.Refresher, i.Catalog, i.Logger))
	return ctx, nil
}
