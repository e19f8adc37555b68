package usecases

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const conversationFallbackPrefix = "我理解您想进行对话。"

// ChatResponderImpl answers ordinary conversation with the completion service.
type ChatResponderImpl struct {
	gateway domain.CompletionGateway
	logger  *log.Logger
}

var _ domain.ChatResponder = ChatResponderImpl{}

// NewChatResponderImpl creates a new ChatResponderImpl.
func NewChatResponderImpl(gateway domain.CompletionGateway, logger *log.Logger) ChatResponderImpl {
	return ChatResponderImpl{gateway: gateway, logger: logger}
}

// Reply implements domain.ChatResponder. When the service fails the utterance is acknowledged.
func (cr ChatResponderImpl) Reply(ctx context.Context, utterance string) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	reply := tiered[string]{
		component: "ChatResponder",
		logger:    cr.logger,
		primary: func(ctx context.Context) (string, error) {
			messages, err := loadPrompt("chat-reply.yml", utterance)
			if err != nil {
				return "", err
			}
			resp, err := cr.gateway.Complete(ctx, domain.CompletionRequest{Messages: messages})
			if err != nil {
				return "", err
			}
			RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
			content := strings.TrimSpace(resp.Content)
			if content == "" {
				return "", errors.New("empty reply")
			}
			return content, nil
		},
		fallback: func(context.Context) string {
			return conversationFallbackPrefix + utterance
		},
	}.run(spanCtx)

	return reply, nil
}

// InitChatResponder registers the domain.ChatResponder.
type InitChatResponder struct {
	Gateway domain.CompletionGateway `resolve:""`
	Logger  *log.Logger              `resolve:""`
}

// Initialize registers ChatResponderImpl in the dependency container.
func (i InitChatResponder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChatResponder](NewChatResponderImpl(i.Gateway, i.Logger))
	return ctx, nil
}
