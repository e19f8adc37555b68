package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/common"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	selectToolFunction    = "select_tool"
	conversationSelection = "conversation"

	CLASSIFY_MAX_TOKENS  = 256
	CLASSIFY_TEMPERATURE = 0.0
)

var errUnusableSelection = errors.New("unusable tool selection")

// IntentClassifierImpl asks the completion service which tool an utterance requests and
// falls back to name matching when the service fails or answers with an unknown tool.
type IntentClassifierImpl struct {
	gateway domain.CompletionGateway
	logger  *log.Logger
}

var _ domain.IntentClassifier = IntentClassifierImpl{}

// NewIntentClassifierImpl creates a new IntentClassifierImpl.
func NewIntentClassifierImpl(gateway domain.CompletionGateway, logger *log.Logger) IntentClassifierImpl {
	return IntentClassifierImpl{gateway: gateway, logger: logger}
}

// Classify implements domain.IntentClassifier. It never fails: the rule tier always answers.
func (ic IntentClassifierImpl) Classify(ctx context.Context, utterance string, tools []domain.ToolDescriptor) (domain.IntentResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("tools.count", len(tools)),
	))
	defer span.End()

	if len(tools) == 0 {
		return domain.IntentResult{Kind: domain.IntentKind_Conversation}, nil
	}

	result := tiered[domain.IntentResult]{
		component: "IntentClassifier",
		logger:    ic.logger,
		primary: func(ctx context.Context) (domain.IntentResult, error) {
			return ic.classifyWithLLM(ctx, utterance, tools)
		},
		fallback: func(context.Context) domain.IntentResult {
			return classifyByName(utterance, tools)
		},
	}.run(spanCtx)

	span.SetAttributes(
		attribute.String("intent.kind", string(result.Kind)),
		attribute.String("intent.tool", result.ToolName),
	)
	return result, nil
}

func (ic IntentClassifierImpl) classifyWithLLM(ctx context.Context, utterance string, tools []domain.ToolDescriptor) (domain.IntentResult, error) {
	names := make([]string, 0, len(tools)+1)
	lines := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
		lines = append(lines, fmt.Sprintf("- %s: %s (parameters: %s)", t.Name, t.Description, strings.Join(t.ParameterNames(), ", ")))
	}
	names = append(names, conversationSelection)

	messages, err := loadPrompt("intent-classification.yml", strings.Join(lines, "\n"), utterance)
	if err != nil {
		return domain.IntentResult{}, err
	}

	enum := make([]any, len(names))
	for i, n := range names {
		enum[i] = n
	}

	resp, err := ic.gateway.Complete(ctx, domain.CompletionRequest{
		Messages: messages,
		Functions: []domain.CompletionFunction{{
			Name:        selectToolFunction,
			Description: "Select the tool the user wants to use, or conversation.",
			Parameters: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"tool":      {Type: "string", Enum: enum, Description: "Tool name or conversation"},
					"arguments": {Type: "object", Description: "Argument values stated by the user"},
				},
				Required: []string{"tool"},
			},
		}},
		ForceFunction: selectToolFunction,
		Temperature:   common.Ptr(CLASSIFY_TEMPERATURE),
		MaxTokens:     common.Ptr(CLASSIFY_MAX_TOKENS),
	})
	if err != nil {
		return domain.IntentResult{}, err
	}
	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return parseToolSelection(resp, tools)
}

type toolSelection struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

// parseToolSelection reads the select_tool call. Models that ignore the forced
// function may call a tool directly or answer with the JSON in the content.
func parseToolSelection(resp domain.CompletionResponse, tools []domain.ToolDescriptor) (domain.IntentResult, error) {
	var sel toolSelection
	switch {
	case len(resp.FunctionCalls) > 0:
		call := resp.FunctionCalls[0]
		if call.Name == selectToolFunction {
			if err := json.Unmarshal([]byte(call.Arguments), &sel); err != nil {
				return domain.IntentResult{}, fmt.Errorf("%w: %v", errUnusableSelection, err)
			}
			break
		}
		sel.Tool = call.Name
		if strings.TrimSpace(call.Arguments) != "" {
			if err := json.Unmarshal([]byte(call.Arguments), &sel.Arguments); err != nil {
				return domain.IntentResult{}, fmt.Errorf("%w: %v", errUnusableSelection, err)
			}
		}
	case strings.TrimSpace(resp.Content) != "":
		if err := json.Unmarshal([]byte(stripCodeFence(resp.Content)), &sel); err != nil {
			return domain.IntentResult{}, fmt.Errorf("%w: %v", errUnusableSelection, err)
		}
	default:
		return domain.IntentResult{}, fmt.Errorf("%w: empty completion", errUnusableSelection)
	}

	if sel.Tool == conversationSelection {
		return domain.IntentResult{Kind: domain.IntentKind_Conversation}, nil
	}
	if !slices.ContainsFunc(tools, func(t domain.ToolDescriptor) bool { return t.Name == sel.Tool }) {
		return domain.IntentResult{}, fmt.Errorf("%w: unknown tool %q", errUnusableSelection, sel.Tool)
	}
	return domain.IntentResult{
		Kind:       domain.IntentKind_Tool,
		ToolName:   sel.Tool,
		Parameters: sel.Arguments,
	}, nil
}

// classifyByName reports a tool intent when the lower-cased utterance contains a tool
// name. Longer names are tried first so "search_docs" wins over "search".
func classifyByName(utterance string, tools []domain.ToolDescriptor) domain.IntentResult {
	text := strings.ToLower(utterance)
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	slices.SortStableFunc(names, func(a, b string) int { return len(b) - len(a) })

	for _, name := range names {
		if name != "" && strings.Contains(text, strings.ToLower(name)) {
			return domain.IntentResult{Kind: domain.IntentKind_Tool, ToolName: name}
		}
	}
	return domain.IntentResult{Kind: domain.IntentKind_Conversation}
}

// InitIntentClassifier registers the domain.IntentClassifier.
type InitIntentClassifier struct {
	Gateway domain.CompletionGateway `resolve:""`
	Logger  *log.Logger              `resolve:""`
}

// Initialize registers IntentClassifierImpl in the dependency container.
func (i InitIntentClassifier) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.IntentClassifier](NewIntentClassifierImpl(i.Gateway, i.Logger))
	return ctx, nil
}
