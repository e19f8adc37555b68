package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TransportFactory builds the client transport for a provider configuration.
type TransportFactory func(cfg domain.ProviderConfig) (sdk.Transport, error)

// Connection is a domain.ProviderConnection backed by an MCP client session.
type Connection struct {
	cfg          domain.ProviderConfig
	client       *sdk.Client
	newTransport TransportFactory
	callTimeout  time.Duration
	logger       *log.Logger

	mu      sync.RWMutex
	session *sdk.ClientSession
	tools   []domain.ToolDescriptor
}

var _ domain.ProviderConnection = (*Connection)(nil)

// NewConnection creates a Connection. A callTimeout of zero disables per-call deadlines.
func NewConnection(
	cfg domain.ProviderConfig,
	client *sdk.Client,
	newTransport TransportFactory,
	callTimeout time.Duration,
	logger *log.Logger,
) *Connection {
	return &Connection{
		cfg:          cfg,
		client:       client,
		newTransport: newTransport,
		callTimeout:  callTimeout,
		logger:       logger,
	}
}

// ProviderID returns the configured provider id.
func (c *Connection) ProviderID() string {
	return c.cfg.ID
}

// Connect establishes the transport and runs capability discovery.
func (c *Connection) Connect(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("provider.id", c.cfg.ID),
		attribute.String("provider.transport", string(c.cfg.Transport)),
	))
	defer span.End()

	transport, err := c.newTransport(c.cfg)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewProviderErr(c.cfg.ID, "", fmt.Errorf("%w: %v", domain.ErrConnect, err))
	}

	callCtx, cancel := c.withTimeout(spanCtx)
	defer cancel()

	session, err := c.client.Connect(callCtx, transport, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewProviderErr(c.cfg.ID, "", fmt.Errorf("%w: %v", domain.ErrConnect, err))
	}

	tools, err := c.listTools(callCtx, session)
	if err != nil {
		_ = session.Close()
		err = domain.NewProviderErr(c.cfg.ID, "", fmt.Errorf("%w: discovery: %v", domain.ErrConnect, err))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	if len(tools) == 0 {
		_ = session.Close()
		err = domain.NewProviderErr(c.cfg.ID, "", domain.ErrNoToolsAdvertised)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	c.mu.Lock()
	previous := c.session
	c.session = session
	c.tools = tools
	c.mu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}

	span.SetAttributes(attribute.Int("provider.tools", len(tools)))
	return nil
}

// Discover re-runs capability discovery on the established session.
// A provider that stops advertising tools is disconnected.
func (c *Connection) Discover(ctx context.Context) ([]domain.ToolDescriptor, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("provider.id", c.cfg.ID),
	))
	defer span.End()

	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()
	if session == nil {
		err := domain.NewProviderErr(c.cfg.ID, "", domain.ErrProviderUnavailable)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	callCtx, cancel := c.withTimeout(spanCtx)
	defer cancel()

	tools, err := c.listTools(callCtx, session)
	if err != nil {
		c.drop(session)
		err = domain.NewProviderErr(c.cfg.ID, "", fmt.Errorf("%w: discovery: %v", domain.ErrConnect, err))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if len(tools) == 0 {
		c.drop(session)
		err = domain.NewProviderErr(c.cfg.ID, "", domain.ErrNoToolsAdvertised)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	c.mu.Lock()
	c.tools = tools
	c.mu.Unlock()

	return cloneTools(tools), nil
}

// Tools returns the descriptors found by the last discovery.
func (c *Connection) Tools() []domain.ToolDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneTools(c.tools)
}

// Connected reports whether a session is open.
func (c *Connection) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session != nil
}

// Invoke forwards a tool call to the provider. Tool-level errors reported by the
// provider come back as a result with IsError set; transport and protocol
// failures are returned as *domain.InvocationErr.
func (c *Connection) Invoke(ctx context.Context, toolName string, args map[string]any) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("provider.id", c.cfg.ID),
		attribute.String("tool.name", toolName),
	))
	defer span.End()

	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()
	if session == nil {
		err := domain.NewProviderErr(c.cfg.ID, toolName, domain.ErrProviderUnavailable)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}

	callCtx, cancel := c.withTimeout(spanCtx)
	defer cancel()

	if args == nil {
		args = map[string]any{}
	}
	res, err := session.CallTool(callCtx, &sdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		invErr := &domain.InvocationErr{ProviderID: c.cfg.ID, ToolName: toolName, Payload: err.Error()}
		telemetry.RecordErrorAndStatus(span, invErr)
		return domain.ToolResult{}, invErr
	}

	result, err := toToolResult(res)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, &domain.InvocationErr{ProviderID: c.cfg.ID, ToolName: toolName, Payload: err.Error()}
	}
	span.SetAttributes(attribute.Bool("tool.is_error", result.IsError))
	return result, nil
}

// Close releases the session.
func (c *Connection) Close() error {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.mu.Unlock()

	if session == nil {
		return nil
	}
	return session.Close()
}

func (c *Connection) drop(session *sdk.ClientSession) {
	c.mu.Lock()
	if c.session == session {
		c.session = nil
		c.tools = nil
	}
	c.mu.Unlock()
	if err := session.Close(); err != nil {
		c.logger.Printf("ProviderConnection: closing session of %q: %v", c.cfg.ID, err)
	}
}

func (c *Connection) listTools(ctx context.Context, session *sdk.ClientSession) ([]domain.ToolDescriptor, error) {
	var (
		tools  []domain.ToolDescriptor
		cursor string
	)
	for {
		res, err := session.ListTools(ctx, &sdk.ListToolsParams{Cursor: cursor})
		if err != nil {
			return nil, err
		}
		for _, t := range res.Tools {
			schema, err := domain.ParseToolSchema(t.InputSchema)
			if err != nil {
				c.logger.Printf("ProviderConnection: skipping tool %q of %q: %v", t.Name, c.cfg.ID, err)
				continue
			}
			tools = append(tools, domain.ToolDescriptor{
				Name:        t.Name,
				Description: t.Description,
				Schema:      schema,
				ProviderID:  c.cfg.ID,
			})
		}
		if res.NextCursor == "" {
			return tools, nil
		}
		cursor = res.NextCursor
	}
}

func (c *Connection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.callTimeout)
}

func toToolResult(res *sdk.CallToolResult) (domain.ToolResult, error) {
	if res == nil {
		return domain.ToolResult{}, fmt.Errorf("empty tool result")
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return domain.ToolResult{}, fmt.Errorf("marshal tool result: %w", err)
	}

	result := domain.ToolResult{
		Content:    make([]domain.ToolContent, 0, len(res.Content)),
		Structured: res.StructuredContent,
		IsError:    res.IsError,
		Raw:        raw,
	}
	for _, content := range res.Content {
		switch v := content.(type) {
		case *sdk.TextContent:
			result.Content = append(result.Content, domain.ToolContent{Type: "text", Text: v.Text})
		case *sdk.ImageContent:
			result.Content = append(result.Content, domain.ToolContent{Type: "image", MIMEType: v.MIMEType, Data: v.Data})
		case *sdk.AudioContent:
			result.Content = append(result.Content, domain.ToolContent{Type: "audio", MIMEType: v.MIMEType, Data: v.Data})
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return domain.ToolResult{}, fmt.Errorf("marshal tool content: %w", err)
			}
			result.Content = append(result.Content, domain.ToolContent{Type: "resource", Text: string(b)})
		}
	}
	return result, nil
}

func cloneTools(tools []domain.ToolDescriptor) []domain.ToolDescriptor {
	if tools == nil {
		return nil
	}
	out := make([]domain.ToolDescriptor, len(tools))
	copy(out, tools)
	return out
}
