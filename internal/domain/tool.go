package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// ToolDescriptor is the canonical description of a callable tool advertised by a provider.
type ToolDescriptor struct {
	Name        string
	Description string
	Schema      *jsonschema.Schema
	ProviderID  string
}

// ParseToolSchema converts a raw JSON-compatible schema value into a jsonschema.Schema.
func ParseToolSchema(raw any) (*jsonschema.Schema, error) {
	if raw == nil {
		return nil, ErrToolSchemaNotFound
	}
	if s, ok := raw.(*jsonschema.Schema); ok {
		return s, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal tool schema: %w", err)
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal tool schema: %w", err)
	}
	return &s, nil
}

// RequiredParameters returns the names of the required parameters in declaration order.
func (td ToolDescriptor) RequiredParameters() []string {
	if td.Schema == nil {
		return nil
	}
	return slices.Clone(td.Schema.Required)
}

// ParameterNames returns required parameters first, followed by the optional ones sorted by name.
func (td ToolDescriptor) ParameterNames() []string {
	if td.Schema == nil {
		return nil
	}
	names := td.RequiredParameters()
	optional := make([]string, 0, len(td.Schema.Properties))
	for name := range td.Schema.Properties {
		if !slices.Contains(names, name) {
			optional = append(optional, name)
		}
	}
	sort.Strings(optional)
	return append(names, optional...)
}

// Parameter returns the schema of the named parameter.
func (td ToolDescriptor) Parameter(name string) (*jsonschema.Schema, bool) {
	if td.Schema == nil || td.Schema.Properties == nil {
		return nil, false
	}
	p, ok := td.Schema.Properties[name]
	return p, ok && p != nil
}

// DeclaresParameter reports whether name is one of the tool's parameters.
// A schema without properties accepts any name.
func (td ToolDescriptor) DeclaresParameter(name string) bool {
	if td.Schema == nil || len(td.Schema.Properties) == 0 {
		return true
	}
	_, ok := td.Schema.Properties[name]
	return ok
}

// ParameterType returns the JSON type of the named parameter, or "string" when it is not declared.
func (td ToolDescriptor) ParameterType(name string) string {
	p, ok := td.Parameter(name)
	if !ok {
		return "string"
	}
	return schemaType(p)
}

// IsArrayParameter reports whether the named parameter is declared as an array.
func (td ToolDescriptor) IsArrayParameter(name string) bool {
	return td.ParameterType(name) == "array"
}

// ValidateArguments validates the arguments against the tool's parameter schema.
func (td ToolDescriptor) ValidateArguments(args map[string]any) error {
	if td.Schema == nil {
		return ErrToolSchemaNotFound
	}
	resolved, err := td.Schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolve schema for tool %q: %w", td.Name, err)
	}

	// Normalize Go values to their JSON shape before validation.
	data, err := json.Marshal(args)
	if err != nil {
		return NewValidationErr(fmt.Sprintf("invalid arguments for tool %q: %v", td.Name, err))
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return NewValidationErr(fmt.Sprintf("invalid arguments for tool %q: %v", td.Name, err))
	}
	if instance == nil {
		instance = map[string]any{}
	}

	if err := resolved.Validate(instance); err != nil {
		return NewValidationErr(fmt.Sprintf("invalid arguments for tool %q: %v", td.Name, err))
	}
	return nil
}

func schemaType(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	for _, t := range s.Types {
		if t != "null" {
			return t
		}
	}
	if s.Items != nil {
		return "array"
	}
	return "string"
}

// ToolContent is one content block of a tool result.
type ToolContent struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     []byte `json:"data,omitempty"`
}

// ToolResult is the result of a tool invocation as returned by the provider.
type ToolResult struct {
	Content    []ToolContent `json:"content"`
	Structured any           `json:"structuredContent,omitempty"`
	IsError    bool          `json:"isError,omitempty"`
	// Raw is the provider's result payload, untouched.
	Raw json.RawMessage `json:"-"`
}

// Text joins the text content blocks of the result.
func (r ToolResult) Text() string {
	parts := make([]string, 0, len(r.Content))
	for _, c := range r.Content {
		if c.Type == "text" && c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// ToolCatalog is the single addressable namespace over all provider tools.
type ToolCatalog interface {
	// ListTools returns the whole catalog, or the subset owned by providerID when it is not empty.
	ListTools(providerID string) []ToolDescriptor

	// Lookup returns the descriptor registered under the unqualified tool name.
	Lookup(name string) (ToolDescriptor, bool)

	// LookupOn returns the descriptor of a tool advertised by the given provider.
	LookupOn(providerID, name string) (ToolDescriptor, bool)

	// Execute routes the call to the provider owning the unqualified tool name.
	Execute(ctx context.Context, name string, args map[string]any) (ToolResult, error)

	// ExecuteOn routes the call to the given provider.
	ExecuteOn(ctx context.Context, providerID, name string, args map[string]any) (ToolResult, error)
}

// ToolCatalogRefresher re-runs provider discovery and swaps in the rebuilt catalog.
type ToolCatalogRefresher interface {
	Refresh(ctx context.Context) error
}
