package mcp

import (
	"context"
	"fmt"
	"log"
	"maps"
	"net/http"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	clientName    = "symbiont-mcp-agent"
	clientVersion = "1.0.0"
)

// Connector creates MCP connections for provider configurations.
type Connector struct {
	httpClient  *http.Client
	callTimeout time.Duration
	logger      *log.Logger
}

var _ domain.ProviderConnector = Connector{}

// NewConnector creates a new Connector.
func NewConnector(httpClient *http.Client, callTimeout time.Duration, logger *log.Logger) Connector {
	return Connector{
		httpClient:  httpClient,
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// NewConnection implements domain.ProviderConnector.
func (c Connector) NewConnection(cfg domain.ProviderConfig) domain.ProviderConnection {
	client := sdk.NewClient(&sdk.Implementation{Name: clientName, Version: clientVersion}, nil)
	return NewConnection(cfg, client, c.transportFor, c.callTimeout, c.logger)
}

// transportFor maps the configured transport kind to an MCP client transport.
func (c Connector) transportFor(cfg domain.ProviderConfig) (sdk.Transport, error) {
	switch cfg.Transport {
	case domain.TransportKind_Stream:
		return &sdk.StreamableClientTransport{
			Endpoint:   cfg.Endpoint,
			HTTPClient: c.clientWithHeaders(cfg.Headers),
		}, nil
	case domain.TransportKind_SSE:
		return &sdk.SSEClientTransport{
			Endpoint:   cfg.Endpoint,
			HTTPClient: c.clientWithHeaders(cfg.Headers),
		}, nil
	case domain.TransportKind_Subprocess:
		cmd := exec.Command(cfg.Command, cfg.Args...)
		cmd.Env = append(os.Environ(), envList(cfg.Env)...)
		cmd.Stderr = c.logger.Writer()
		return &sdk.CommandTransport{Command: cmd}, nil
	default:
		return nil, fmt.Errorf("unsupported transport %q", cfg.Transport)
	}
}

func (c Connector) clientWithHeaders(headers map[string]string) *http.Client {
	base := c.httpClient
	if base == nil {
		base = http.DefaultClient
	}
	if len(headers) == 0 {
		return base
	}
	rt := base.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	client := *base
	client.Transport = headerTransport{base: rt, headers: headers}
	return &client
}

// headerTransport adds static headers to every outgoing request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	for k, v := range t.headers {
		r.Header.Set(k, v)
	}
	return t.base.RoundTrip(r)
}

func envList(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		out = append(out, k+"="+env[k])
	}
	return out
}

// InitProviderConnector registers the MCP-backed domain.ProviderConnector.
type InitProviderConnector struct {
	HttpClient  *http.Client  `resolve:""`
	Logger      *log.Logger   `resolve:""`
	CallTimeout time.Duration `config:"PROVIDER_CALL_TIMEOUT" default:"30s"`
}

// Initialize registers the connector in the dependency container.
func (i InitProviderConnector) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ProviderConnector](NewConnector(i.HttpClient, i.CallTimeout, i.Logger))
	return ctx, nil
}
