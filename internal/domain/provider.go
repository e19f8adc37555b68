package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// TransportKind identifies how a provider is reached.
type TransportKind string

const (
	// TransportKind_Stream is a persistent streamable HTTP connection to an endpoint.
	TransportKind_Stream TransportKind = "stream"
	// TransportKind_SSE is a server-sent events connection to an endpoint.
	TransportKind_SSE TransportKind = "sse"
	// TransportKind_Subprocess is a local process spoken to over stdio.
	TransportKind_Subprocess TransportKind = "subprocess"
)

// ProviderConfig describes how to reach one tool provider.
type ProviderConfig struct {
	ID        string
	Transport TransportKind
	Endpoint  string
	Command   string
	Args      []string
	Env       map[string]string
	Headers   map[string]string
}

// Validate checks that the configuration is complete for its transport kind.
func (pc ProviderConfig) Validate() error {
	if strings.TrimSpace(pc.ID) == "" {
		return NewConfigErr("provider", "id cannot be empty")
	}
	switch pc.Transport {
	case TransportKind_Stream, TransportKind_SSE:
		if pc.Endpoint == "" {
			return NewConfigErr(pc.ID, "endpoint is required for "+string(pc.Transport)+" transport")
		}
		u, err := url.Parse(pc.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return NewConfigErr(pc.ID, fmt.Sprintf("invalid endpoint %q", pc.Endpoint))
		}
	case TransportKind_Subprocess:
		if pc.Command == "" {
			return NewConfigErr(pc.ID, "command is required for subprocess transport")
		}
	default:
		return NewConfigErr(pc.ID, fmt.Sprintf("unknown transport %q", pc.Transport))
	}
	return nil
}

// ProviderConnection owns the channel to one tool provider.
type ProviderConnection interface {
	// ProviderID returns the id of the provider this connection belongs to.
	ProviderID() string

	// Connect establishes the transport and runs capability discovery.
	Connect(ctx context.Context) error

	// Discover re-runs capability discovery on an established connection.
	Discover(ctx context.Context) ([]ToolDescriptor, error)

	// Tools returns the descriptors found by the last discovery, in advertised order.
	Tools() []ToolDescriptor

	// Connected reports whether the connection is usable.
	Connected() bool

	// Invoke forwards a tool call to the provider.
	Invoke(ctx context.Context, toolName string, args map[string]any) (ToolResult, error)

	// Close releases the channel.
	Close() error
}

// ProviderConnector creates connections from provider configuration.
type ProviderConnector interface {
	NewConnection(cfg ProviderConfig) ProviderConnection
}

// ProviderConfigSource loads the configured providers in declaration order.
type ProviderConfigSource interface {
	LoadProviderConfigs(ctx context.Context) ([]ProviderConfig, error)
}
