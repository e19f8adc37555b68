package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromptGeneratorImpl_GeneratePrompt(t *testing.T) {
	tests := map[string]struct {
		req             domain.PromptRequest
		setExpectations func(*domain.MockCompletionGateway)
		expected        string
	}{
		"llm-prompt": {
			req: domain.PromptRequest{Tool: meetingTool(), Missing: []string{"date", "time"}},
			setExpectations: func(g *domain.MockCompletionGateway) {
				g.EXPECT().
					Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
						return strings.Contains(req.Messages[0].Content, "date, time")
					})).
					Return(domain.CompletionResponse{Content: "  请问会议在哪天几点？ "}, nil).
					Once()
			},
			expected: "请问会议在哪天几点？",
		},
		"gateway-error-uses-field-table": {
			req: domain.PromptRequest{Tool: meetingTool(), Missing: []string{"date", "time"}},
			setExpectations: func(g *domain.MockCompletionGateway) {
				g.EXPECT().
					Complete(mock.Anything, mock.Anything).
					Return(domain.CompletionResponse{}, errors.New("timeout")).
					Once()
			},
			expected: "会议安排在哪一天？",
		},
		"empty-reply-uses-single-field-fallback": {
			req: domain.PromptRequest{Tool: calculatorTool(), Missing: []string{"operation"}},
			setExpectations: func(g *domain.MockCompletionGateway) {
				g.EXPECT().
					Complete(mock.Anything, mock.Anything).
					Return(domain.CompletionResponse{Content: "   "}, nil).
					Once()
			},
			expected: "我还需要了解：operation。",
		},
		"nothing-missing": {
			req:      domain.PromptRequest{Tool: meetingTool()},
			expected: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gateway := domain.NewMockCompletionGateway(t)
			if tt.setExpectations != nil {
				tt.setExpectations(gateway)
			}
			generator := NewPromptGeneratorImpl(gateway, discardLogger())

			got, err := generator.GeneratePrompt(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStaticPrompt(t *testing.T) {
	tests := map[string]struct {
		missing  []string
		expected string
	}{
		"table-entry-for-first-field": {missing: []string{"attendees", "a"}, expected: "还有谁需要参加会议？"},
		"single-unknown-field":        {missing: []string{"a"}, expected: "我还需要了解：a。"},
		"several-unknown-fields":      {missing: []string{"a", "b"}, expected: "我还需要了解：a, b。"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, staticPrompt(tt.missing))
		})
	}
}

func TestInitPromptGenerator_Initialize(t *testing.T) {
	i := InitPromptGenerator{Gateway: domain.NewMockCompletionGateway(t), Logger: discardLogger()}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.PromptGenerator]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
