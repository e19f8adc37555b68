package modelrunner

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/common"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GenerationSettings are the default sampling parameters sent with every completion.
type GenerationSettings struct {
	Model            string
	Temperature      float64
	MaxTokens        int
	TopP             float64
	TopK             int
	FrequencyPenalty float64
	N                int
}

// DefaultGenerationSettings returns the settings used when nothing is configured.
func DefaultGenerationSettings() GenerationSettings {
	return GenerationSettings{
		Model:            "Qwen/Qwen2.5-7B-Instruct",
		Temperature:      0.7,
		MaxTokens:        512,
		TopP:             0.7,
		TopK:             50,
		FrequencyPenalty: 0.5,
		N:                1,
	}
}

// CompletionGateway adapts CompletionClient to domain.CompletionGateway.
type CompletionGateway struct {
	client   CompletionClient
	settings GenerationSettings
	timeout  time.Duration
}

var _ domain.CompletionGateway = CompletionGateway{}

// NewCompletionGateway creates a new gateway. A timeout of zero disables the per-call deadline.
func NewCompletionGateway(client CompletionClient, settings GenerationSettings, timeout time.Duration) CompletionGateway {
	return CompletionGateway{client: client, settings: settings, timeout: timeout}
}

// Complete implements domain.CompletionGateway.
func (g CompletionGateway) Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", g.settings.Model),
		attribute.Int("llm.messages", len(req.Messages)),
		attribute.Int("llm.functions", len(req.Functions)),
	))
	defer span.End()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		spanCtx, cancel = context.WithTimeout(spanCtx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Chat(spanCtx, g.toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CompletionResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("%w: no choices in response", domain.ErrCompletionMalformed)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CompletionResponse{}, err
	}

	msg := resp.Choices[0].Message
	out := domain.CompletionResponse{
		Content:       msg.Content,
		FunctionCalls: make([]domain.CompletionFunctionCall, 0, len(msg.ToolCalls)),
	}
	for _, call := range msg.ToolCalls {
		out.FunctionCalls = append(out.FunctionCalls, domain.CompletionFunctionCall{
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	switch {
	case resp.Usage != nil:
		out.Usage = domain.CompletionUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	case resp.Timings != nil:
		out.Usage = domain.CompletionUsage{
			PromptTokens:     resp.Timings.PromptN,
			CompletionTokens: resp.Timings.PredictedN,
			TotalTokens:      resp.Timings.PromptN + resp.Timings.PredictedN,
		}
	}

	span.SetAttributes(
		attribute.Int("llm.tool_calls", len(out.FunctionCalls)),
		attribute.Int("llm.total_tokens", out.Usage.TotalTokens),
	)
	return out, nil
}

func (g CompletionGateway) toChatRequest(req domain.CompletionRequest) ChatRequest {
	s := g.settings
	chatReq := ChatRequest{
		Model:            s.Model,
		Messages:         make([]ChatMessage, len(req.Messages)),
		Temperature:      common.Ptr(s.Temperature),
		MaxTokens:        common.Ptr(s.MaxTokens),
		TopP:             common.Ptr(s.TopP),
		TopK:             common.Ptr(s.TopK),
		FrequencyPenalty: common.Ptr(s.FrequencyPenalty),
		N:                common.Ptr(s.N),
	}
	if req.Temperature != nil {
		chatReq.Temperature = req.Temperature
	}
	if req.TopP != nil {
		chatReq.TopP = req.TopP
	}
	if req.MaxTokens != nil {
		chatReq.MaxTokens = req.MaxTokens
	}

	for i, msg := range req.Messages {
		chatReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	for _, fn := range req.Functions {
		tool := Tool{
			Type: "function",
			Function: ToolFunc{
				Name:        fn.Name,
				Description: fn.Description,
			},
		}
		if fn.Parameters != nil {
			tool.Function.Parameters = fn.Parameters
		}
		chatReq.Tools = append(chatReq.Tools, tool)
	}
	if req.ForceFunction != "" {
		chatReq.ToolChoice = ToolChoice{
			Type:     "function",
			Function: ToolChoiceFunction{Name: req.ForceFunction},
		}
	}
	if req.JSONResponse {
		chatReq.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}
	return chatReq
}

// InitCompletionGateway registers the domain.CompletionGateway.
type InitCompletionGateway struct {
	HttpClient       *http.Client  `resolve:""`
	LLMHost          string        `config:"LLM_MODEL_HOST"`
	APIKey           string        `config:"LLM_API_KEY" default:"-"`
	Model            string        `config:"LLM_MODEL" default:"Qwen/Qwen2.5-7B-Instruct"`
	Temperature      string        `config:"LLM_TEMPERATURE" default:"0.7"`
	MaxTokens        int           `config:"LLM_MAX_TOKENS" default:"512"`
	TopP             string        `config:"LLM_TOP_P" default:"0.7"`
	TopK             int           `config:"LLM_TOP_K" default:"50"`
	FrequencyPenalty string        `config:"LLM_FREQUENCY_PENALTY" default:"0.5"`
	CallTimeout      time.Duration `config:"LLM_CALL_TIMEOUT" default:"60s"`
}

// Initialize registers the CompletionGateway
func (i InitCompletionGateway) Initialize(ctx context.Context) (context.Context, error) {
	settings, err := i.settings()
	if err != nil {
		return ctx, err
	}

	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}

	depend.Register[domain.CompletionGateway](NewCompletionGateway(
		NewCompletionClient(i.LLMHost, apiKey, i.HttpClient),
		settings,
		i.CallTimeout,
	))
	return ctx, nil
}

func (i InitCompletionGateway) settings() (GenerationSettings, error) {
	s := DefaultGenerationSettings()
	s.Model = i.Model
	s.MaxTokens = i.MaxTokens
	s.TopK = i.TopK

	floats := []struct {
		key   string
		value string
		dst   *float64
	}{
		{"LLM_TEMPERATURE", i.Temperature, &s.Temperature},
		{"LLM_TOP_P", i.TopP, &s.TopP},
		{"LLM_FREQUENCY_PENALTY", i.FrequencyPenalty, &s.FrequencyPenalty},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return GenerationSettings{}, fmt.Errorf("invalid %s %q: %w", f.key, f.value, err)
		}
		*f.dst = v
	}
	return s, nil
}
