package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatResponderImpl_Reply(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(*domain.MockCompletionGateway)
		expected        string
	}{
		"llm-reply": {
			setExpectations: func(g *domain.MockCompletionGateway) {
				g.EXPECT().
					Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
						return len(req.Messages) == 2 && lastContent(req) == "你好"
					})).
					Return(domain.CompletionResponse{
						Content: "你好！有什么可以帮您？",
						Usage:   domain.CompletionUsage{PromptTokens: 10, CompletionTokens: 8},
					}, nil).
					Once()
			},
			expected: "你好！有什么可以帮您？",
		},
		"gateway-error-echoes-input": {
			setExpectations: func(g *domain.MockCompletionGateway) {
				g.EXPECT().
					Complete(mock.Anything, mock.Anything).
					Return(domain.CompletionResponse{}, domain.ErrCompletionTransport).
					Once()
			},
			expected: "我理解您想进行对话。你好",
		},
		"empty-reply-echoes-input": {
			setExpectations: func(g *domain.MockCompletionGateway) {
				g.EXPECT().
					Complete(mock.Anything, mock.Anything).
					Return(domain.CompletionResponse{}, nil).
					Once()
			},
			expected: "我理解您想进行对话。你好",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gateway := domain.NewMockCompletionGateway(t)
			tt.setExpectations(gateway)
			responder := NewChatResponderImpl(gateway, discardLogger())

			got, err := responder.Reply(context.Background(), "你好")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitChatResponder_Initialize(t *testing.T) {
	i := InitChatResponder{Gateway: domain.NewMockCompletionGateway(t), Logger: discardLogger()}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.ChatResponder]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
