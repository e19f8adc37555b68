package config

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"os"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

const providersSchemaURL = "https://symbiont-mcp-agent/providers.schema.json"

//go:embed schema/providers.schema.json
var providersSchemaJSON []byte

type providersFile struct {
	Providers []providerEntry `yaml:"providers"`
}

type providerEntry struct {
	ID        string            `yaml:"id"`
	Transport string            `yaml:"transport"`
	Endpoint  string            `yaml:"endpoint"`
	Command   string            `yaml:"command"`
	Args      []string          `yaml:"args"`
	Env       map[string]string `yaml:"env"`
	Headers   map[string]string `yaml:"headers"`
}

// FileProviderConfigSource loads provider configuration from a YAML file.
// Endpoint, env and header values may reference environment variables as ${NAME}.
type FileProviderConfigSource struct {
	path   string
	schema *jsonschema.Schema
}

var _ domain.ProviderConfigSource = FileProviderConfigSource{}

// NewFileProviderConfigSource creates a source for the given file path.
func NewFileProviderConfigSource(path string) (FileProviderConfigSource, error) {
	schema, err := compileProvidersSchema()
	if err != nil {
		return FileProviderConfigSource{}, err
	}
	return FileProviderConfigSource{path: path, schema: schema}, nil
}

// LoadProviderConfigs reads, validates and decodes the file, keeping declaration order.
func (s FileProviderConfigSource) LoadProviderConfigs(_ context.Context) ([]domain.ProviderConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.NewConfigErr(s.path, err.Error())
	}
	return ParseProviderConfigs(s.schema, s.path, data)
}

// ParseProviderConfigs validates a YAML document against the provider schema and decodes it.
func ParseProviderConfigs(schema *jsonschema.Schema, source string, data []byte) ([]domain.ProviderConfig, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewConfigErr(source, fmt.Sprintf("parse yaml: %v", err))
	}

	// the validator works on JSON values, so the YAML tree goes through a JSON round trip
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, domain.NewConfigErr(source, fmt.Sprintf("convert to json: %v", err))
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.NewConfigErr(source, fmt.Sprintf("convert to json: %v", err))
	}
	if err := schema.Validate(inst); err != nil {
		return nil, domain.NewConfigErr(source, err.Error())
	}

	var file providersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.NewConfigErr(source, fmt.Sprintf("decode providers: %v", err))
	}

	configs := make([]domain.ProviderConfig, 0, len(file.Providers))
	for _, p := range file.Providers {
		cfg := domain.ProviderConfig{
			ID:        p.ID,
			Transport: domain.TransportKind(p.Transport),
			Endpoint:  os.ExpandEnv(p.Endpoint),
			Command:   p.Command,
			Args:      p.Args,
			Env:       expandValues(p.Env),
			Headers:   expandValues(p.Headers),
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func compileProvidersSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(providersSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("load providers schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(providersSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("load providers schema: %w", err)
	}
	schema, err := c.Compile(providersSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile providers schema: %w", err)
	}
	return schema, nil
}

func expandValues(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := maps.Clone(in)
	for k, v := range out {
		out[k] = os.ExpandEnv(v)
	}
	return out
}

// InitProviderConfigSource registers the file-backed domain.ProviderConfigSource.
type InitProviderConfigSource struct {
	Path string `config:"MCP_PROVIDERS_FILE" default:"providers.yml"`
}

// Initialize compiles the schema and registers the source.
func (i InitProviderConfigSource) Initialize(ctx context.Context) (context.Context, error) {
	src, err := NewFileProviderConfigSource(i.Path)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.ProviderConfigSource](src)
	return ctx, nil
}
