package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/common"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	EXTRACT_MAX_TOKENS  = 512
	EXTRACT_TEMPERATURE = 0.1
)

// ParameterExtractorImpl extracts tool arguments with the completion service and falls
// back to "name: value" pattern matching when the service fails or answers badly.
type ParameterExtractorImpl struct {
	gateway      domain.CompletionGateway
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

var _ domain.ParameterExtractor = ParameterExtractorImpl{}

// NewParameterExtractorImpl creates a new ParameterExtractorImpl.
func NewParameterExtractorImpl(gateway domain.CompletionGateway, timeProvider domain.CurrentTimeProvider, logger *log.Logger) ParameterExtractorImpl {
	return ParameterExtractorImpl{gateway: gateway, timeProvider: timeProvider, logger: logger}
}

// Extract implements domain.ParameterExtractor. Only a missing schema is returned as an
// error; service and response failures are recovered by the pattern tier.
func (pe ParameterExtractorImpl) Extract(ctx context.Context, req domain.ExtractionRequest) (domain.ExtractionResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool.name", req.Tool.Name),
		attribute.StringSlice("parameters.missing", req.Missing),
	))
	defer span.End()

	if req.Tool.Schema == nil {
		err := fmt.Errorf("%w: %q", domain.ErrToolSchemaNotFound, req.Tool.Name)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ExtractionResult{}, err
	}

	collected := req.Collected
	if collected == nil {
		collected = domain.CollectedParameters{}
	}
	focus := req.Missing
	if len(focus) == 0 {
		focus = collected.MissingRequired(req.Tool)
	}

	result := tiered[domain.ExtractionResult]{
		component: "ParameterExtractor",
		logger:    pe.logger,
		primary: func(ctx context.Context) (domain.ExtractionResult, error) {
			return pe.extractWithLLM(ctx, req.Utterance, req.Tool, collected, focus)
		},
		fallback: func(context.Context) domain.ExtractionResult {
			return extractByPattern(req.Utterance, req.Tool, collected, focus)
		},
	}.run(spanCtx)

	telemetry.RecordErrorAndStatus(span, nil)
	return result, nil
}

type extractionPayload struct {
	Parameters map[string]any `json:"parameters"`
	Missing    []string       `json:"missingParameters"`
}

func (pe ParameterExtractorImpl) extractWithLLM(
	ctx context.Context,
	utterance string,
	tool domain.ToolDescriptor,
	collected domain.CollectedParameters,
	focus []string,
) (domain.ExtractionResult, error) {
	schemaJSON, err := json.MarshalIndent(tool.Schema, "", "  ")
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("marshal tool schema: %w", err)
	}
	collectedTOON, err := marshalCollected(collected)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	focusText := "none"
	if len(focus) > 0 {
		focusText = strings.Join(focus, ", ")
	}

	messages, err := loadPrompt("parameter-extraction.yml",
		pe.timeProvider.Now().Format(domain.DateLayout),
		tool.Name,
		tool.Description,
		string(schemaJSON),
		collectedTOON,
		focusText,
		utterance,
	)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	resp, err := pe.gateway.Complete(ctx, domain.CompletionRequest{
		Messages:     messages,
		JSONResponse: true,
		Temperature:  common.Ptr(EXTRACT_TEMPERATURE),
		MaxTokens:    common.Ptr(EXTRACT_MAX_TOKENS),
	})
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: %v", domain.ErrExtractionService, err)
	}
	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	var payload extractionPayload
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Content)), &payload); err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedExtractionResponse, err)
	}
	if payload.Parameters == nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: parameters object is missing", domain.ErrMalformedExtractionResponse)
	}

	missing := payload.Missing
	if missing == nil {
		missing = []string{}
	}
	return domain.ExtractionResult{
		Parameters: collected.Merge(payload.Parameters, tool),
		Missing:    missing,
	}, nil
}

// marshalCollected renders the collected values in TOON for the extraction prompt.
func marshalCollected(collected domain.CollectedParameters) (string, error) {
	if len(collected) == 0 {
		return "none", nil
	}
	out, err := toon.MarshalString(map[string]any(collected), toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal collected parameters: %w", err)
	}
	return out, nil
}

// extractByPattern looks for "<name>: <token>" for every parameter not yet collected.
// Tokens are converted to the declared parameter type; a token that does not convert
// counts as no match. Required parameters without a match are reported missing.
func extractByPattern(
	utterance string,
	tool domain.ToolDescriptor,
	collected domain.CollectedParameters,
	focus []string,
) domain.ExtractionResult {
	missing := slices.Clone(focus)
	if missing == nil {
		missing = []string{}
	}
	required := tool.RequiredParameters()
	extracted := map[string]any{}

	for _, name := range tool.ParameterNames() {
		if collected.Has(name) {
			continue
		}
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `:\s*([^\s]+)`)
		match := pattern.FindStringSubmatch(utterance)
		if match != nil {
			if v, ok := coerceToken(match[1], tool.ParameterType(name)); ok {
				extracted[name] = v
				missing = slices.DeleteFunc(missing, func(m string) bool { return m == name })
				continue
			}
		}
		if slices.Contains(required, name) && !slices.Contains(missing, name) {
			missing = append(missing, name)
		}
	}

	return domain.ExtractionResult{
		Parameters: collected.Merge(extracted, tool),
		Missing:    missing,
	}
}

// coerceToken converts a matched token to the JSON type of the parameter.
func coerceToken(token, paramType string) (any, bool) {
	token = strings.TrimRight(token, ",;，；。")
	if token == "" {
		return nil, false
	}
	switch paramType {
	case "number":
		f, err := strconv.ParseFloat(token, 64)
		return f, err == nil
	case "integer":
		n, err := strconv.ParseInt(token, 10, 64)
		return n, err == nil
	case "boolean":
		b, err := strconv.ParseBool(strings.ToLower(token))
		return b, err == nil
	case "array":
		parts := strings.FieldsFunc(token, func(r rune) bool { return r == ',' || r == '，' || r == '、' })
		list := make([]any, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		return list, len(list) > 0
	default:
		return token, true
	}
}

// InitParameterExtractor registers the domain.ParameterExtractor.
type InitParameterExtractor struct {
	Gateway      domain.CompletionGateway   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers ParameterExtractorImpl in the dependency container.
func (i InitParameterExtractor) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ParameterExtractor](NewParameterExtractorImpl(i.Gateway, i.TimeProvider, i.Logger))
	return ctx, nil
}
