package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/common"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	PROMPT_MAX_TOKENS  = 128
	PROMPT_TEMPERATURE = 0.7
)

// fieldPrompts holds the static question for well-known parameter names.
var fieldPrompts = map[string]string{
	"attendees": "还有谁需要参加会议？",
	"date":      "会议安排在哪一天？",
	"time":      "会议的具体时间是几点？",
	"duration":  "会议大约需要多长时间？",
	"topic":     "会议的主题是什么？",
}

// PromptGeneratorImpl asks the completion service to phrase the request for missing
// parameters and falls back to a static per-field table.
type PromptGeneratorImpl struct {
	gateway domain.CompletionGateway
	logger  *log.Logger
}

var _ domain.PromptGenerator = PromptGeneratorImpl{}

// NewPromptGeneratorImpl creates a new PromptGeneratorImpl.
func NewPromptGeneratorImpl(gateway domain.CompletionGateway, logger *log.Logger) PromptGeneratorImpl {
	return PromptGeneratorImpl{gateway: gateway, logger: logger}
}

// GeneratePrompt implements domain.PromptGenerator.
func (pg PromptGeneratorImpl) GeneratePrompt(ctx context.Context, req domain.PromptRequest) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool.name", req.Tool.Name),
		attribute.StringSlice("parameters.missing", req.Missing),
	))
	defer span.End()

	if len(req.Missing) == 0 {
		return "", nil
	}

	prompt := tiered[string]{
		component: "PromptGenerator",
		logger:    pg.logger,
		primary: func(ctx context.Context) (string, error) {
			return pg.generateWithLLM(ctx, req)
		},
		fallback: func(context.Context) string {
			return staticPrompt(req.Missing)
		},
	}.run(spanCtx)

	return prompt, nil
}

func (pg PromptGeneratorImpl) generateWithLLM(ctx context.Context, req domain.PromptRequest) (string, error) {
	messages, err := loadPrompt("parameter-request.yml",
		req.Tool.Name,
		req.Tool.Description,
		strings.Join(req.Missing, ", "),
	)
	if err != nil {
		return "", err
	}

	resp, err := pg.gateway.Complete(ctx, domain.CompletionRequest{
		Messages:    messages,
		Temperature: common.Ptr(PROMPT_TEMPERATURE),
		MaxTokens:   common.Ptr(PROMPT_MAX_TOKENS),
	})
	if err != nil {
		return "", err
	}
	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", errors.New("empty parameter request")
	}
	return content, nil
}

// staticPrompt picks the table entry for the first missing field or asks for every missing field.
func staticPrompt(missing []string) string {
	if p, ok := fieldPrompts[missing[0]]; ok {
		return p
	}
	return fmt.Sprintf("我还需要了解：%s。", strings.Join(missing, ", "))
}

// InitPromptGenerator registers the domain.PromptGenerator.
type InitPromptGenerator struct {
	Gateway domain.CompletionGateway `resolve:""`
	Logger  *log.Logger              `resolve:""`
}

// Initialize registers PromptGeneratorImpl in the dependency container.
func (i InitPromptGenerator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.PromptGenerator](NewPromptGeneratorImpl(i.Gateway, i.Logger))
	return ctx, nil
}
