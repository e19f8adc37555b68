package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Aggregator owns the provider connections and exposes their tools as one catalog.
type Aggregator struct {
	connector domain.ProviderConnector
	logger    *log.Logger

	mu          sync.Mutex
	order       []string
	connections map[string]domain.ProviderConnection

	snapshot atomic.Pointer[catalog]
}

var (
	_ domain.ToolCatalog          = (*Aggregator)(nil)
	_ domain.ToolCatalogRefresher = (*Aggregator)(nil)
)

// NewAggregator creates an Aggregator with an empty catalog.
func NewAggregator(connector domain.ProviderConnector, logger *log.Logger) *Aggregator {
	a := &Aggregator{
		connector:   connector,
		logger:      logger,
		connections: map[string]domain.ProviderConnection{},
	}
	a.snapshot.Store(emptyCatalog())
	return a
}

// Initialize connects to every configured provider and builds the catalog.
// Only malformed configuration fails initialization; unreachable providers and
// providers without tools are logged and skipped.
func (a *Aggregator) Initialize(ctx context.Context, configs []domain.ProviderConfig) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("providers.configured", len(configs)),
	))
	defer span.End()

	seen := make(map[string]struct{}, len(configs))
	for _, cfg := range configs {
		if err := cfg.Validate(); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		if _, dup := seen[cfg.ID]; dup {
			err := domain.NewConfigErr(cfg.ID, "duplicate provider id")
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
		seen[cfg.ID] = struct{}{}
	}

	a.mu.Lock()
	for _, cfg := range configs {
		a.order = append(a.order, cfg.ID)
		a.connections[cfg.ID] = a.connector.NewConnection(cfg)
	}
	conns := a.orderedConnections()
	a.mu.Unlock()

	var g errgroup.Group
	for _, conn := range conns {
		g.Go(func() error {
			if err := conn.Connect(spanCtx); err != nil {
				a.logger.Printf("ToolAggregator: provider %q unavailable: %v", conn.ProviderID(), err)
			}
			return nil
		})
	}
	_ = g.Wait()

	a.rebuild(spanCtx)
	telemetry.RecordErrorAndStatus(span, nil)
	return nil
}

// Refresh re-runs discovery on connected providers, retries the unavailable ones
// and swaps in the rebuilt catalog.
func (a *Aggregator) Refresh(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	a.mu.Lock()
	conns := a.orderedConnections()
	a.mu.Unlock()

	var g errgroup.Group
	for _, conn := range conns {
		g.Go(func() error {
			var err error
			if conn.Connected() {
				_, err = conn.Discover(spanCtx)
			} else {
				err = conn.Connect(spanCtx)
			}
			if err != nil {
				a.logger.Printf("ToolAggregator: provider %q unavailable: %v", conn.ProviderID(), err)
			}
			return nil
		})
	}
	_ = g.Wait()

	a.rebuild(spanCtx)
	err := ctx.Err()
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// ListTools returns the merged catalog, or the tools of one provider when providerID is set.
func (a *Aggregator) ListTools(providerID string) []domain.ToolDescriptor {
	c := a.snapshot.Load()
	if providerID != "" {
		return slices.Clone(c.byProvider[providerID])
	}
	return slices.Clone(c.tools)
}

// Lookup returns the descriptor that owns the unqualified tool name.
func (a *Aggregator) Lookup(name string) (domain.ToolDescriptor, bool) {
	tool, ok := a.snapshot.Load().byName[name]
	return tool, ok
}

// LookupOn returns the descriptor of a tool advertised by the given provider.
func (a *Aggregator) LookupOn(providerID, name string) (domain.ToolDescriptor, bool) {
	return a.snapshot.Load().lookupOn(providerID, name)
}

// Collisions returns, per shadowed tool name, the providers whose tool lost the unqualified name.
func (a *Aggregator) Collisions() map[string][]string {
	c := a.snapshot.Load()
	out := make(map[string][]string, len(c.collisions))
	for name, providers := range c.collisions {
		out[name] = slices.Clone(providers)
	}
	return out
}

// Execute routes a call to the provider owning the unqualified tool name.
func (a *Aggregator) Execute(ctx context.Context, name string, args map[string]any) (domain.ToolResult, error) {
	tool, ok := a.Lookup(name)
	if !ok {
		return domain.ToolResult{}, fmt.Errorf("%w: %q", domain.ErrToolNotFound, name)
	}
	return a.ExecuteOn(ctx, tool.ProviderID, name, args)
}

// ExecuteOn routes a call to the given provider. The provider's result is returned unmodified.
func (a *Aggregator) ExecuteOn(ctx context.Context, providerID, name string, args map[string]any) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("provider.id", providerID),
		attribute.String("tool.name", name),
	))
	defer span.End()

	if _, ok := a.LookupOn(providerID, name); !ok {
		err := fmt.Errorf("%w: %q on provider %q", domain.ErrToolNotFound, name, providerID)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}

	a.mu.Lock()
	conn, ok := a.connections[providerID]
	a.mu.Unlock()
	if !ok || !conn.Connected() {
		err := domain.NewProviderErr(providerID, name, domain.ErrProviderUnavailable)
		telemetry.RecordErrorAndStatus(span, err)
		RecordToolInvocation(spanCtx, providerID, name, outcomeFailure)
		return domain.ToolResult{}, err
	}

	start := time.Now()
	res, err := conn.Invoke(spanCtx, name, args)
	RecordToolInvocationDuration(spanCtx, providerID, name, time.Since(start))
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordToolInvocation(spanCtx, providerID, name, outcomeFailure)
		return domain.ToolResult{}, err
	}

	outcome := outcomeSuccess
	if res.IsError {
		outcome = outcomeToolError
	}
	RecordToolInvocation(spanCtx, providerID, name, outcome)
	return res, nil
}

// Close closes every provider connection and empties the catalog.
func (a *Aggregator) Close() error {
	a.mu.Lock()
	conns := a.orderedConnections()
	a.connections = map[string]domain.ProviderConnection{}
	a.order = nil
	a.mu.Unlock()

	var errs []error
	for _, conn := range conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close provider %q: %w", conn.ProviderID(), err))
		}
	}
	a.snapshot.Store(emptyCatalog())
	return errors.Join(errs...)
}

// rebuild swaps in a catalog made of the currently connected providers.
func (a *Aggregator) rebuild(ctx context.Context) {
	a.mu.Lock()
	conns := a.orderedConnections()
	a.mu.Unlock()

	sources := make([]providerTools, 0, len(conns))
	for _, conn := range conns {
		if !conn.Connected() {
			continue
		}
		sources = append(sources, providerTools{providerID: conn.ProviderID(), tools: conn.Tools()})
	}

	c := buildCatalog(sources)
	for _, name := range slices.Sorted(maps.Keys(c.collisions)) {
		a.logger.Printf("ToolAggregator: tool %q of %v shadowed by provider %q", name, c.collisions[name], c.byName[name].ProviderID)
	}
	a.snapshot.Store(c)

	ProvidersUp.Record(ctx, int64(len(sources)))
	a.logger.Printf("ToolAggregator: catalog rebuilt with %d tools from %d/%d providers", len(c.tools), len(sources), len(conns))
}

// orderedConnections must be called with a.mu held.
func (a *Aggregator) orderedConnections() []domain.ProviderConnection {
	conns := make([]domain.ProviderConnection, 0, len(a.order))
	for _, id := range a.order {
		conns = append(conns, a.connections[id])
	}
	return conns
}

// InitToolAggregator loads the provider configuration, connects the providers and
// registers the aggregator as domain.ToolCatalog and domain.ToolCatalogRefresher.
type InitToolAggregator struct {
	Connector    domain.ProviderConnector    `resolve:""`
	ConfigSource domain.ProviderConfigSource `resolve:""`
	Logger       *log.Logger                 `resolve:""`
	aggregator   *Aggregator
}

// Initialize builds the aggregator and registers it in the dependency container.
func (i *InitToolAggregator) Initialize(ctx context.Context) (context.Context, error) {
	configs, err := i.ConfigSource.LoadProviderConfigs(ctx)
	if err != nil {
		return ctx, err
	}

	i.aggregator = NewAggregator(i.Connector, i.Logger)
	if err := i.aggregator.Initialize(ctx, configs); err != nil {
		return ctx, err
	}

	depend.Register(i.aggregator)
	depend.Register[domain.ToolCatalog](i.aggregator)
	depend.Register[domain.ToolCatalogRefresher](i.aggregator)
	return ctx, nil
}

// Close closes the provider connections.
func (i *InitToolAggregator) Close() {
	if i.aggregator == nil {
		return
	}
	if err := i.aggregator.Close(); err != nil {
		i.Logger.Printf("ToolAggregator: %v", err)
	}
}
