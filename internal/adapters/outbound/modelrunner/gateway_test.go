package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/common"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionGateway_Complete(t *testing.T) {
	userMsg := []domain.CompletionMessage{{Role: domain.ChatRole_User, Content: "hi"}}

	tests := map[string]struct {
		response     string
		statusCode   int
		req          domain.CompletionRequest
		expectedErr  error
		expectedResp domain.CompletionResponse
		validateReq  func(*testing.T, ChatRequest)
	}{
		"success-with-default-settings": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"Hello!"}}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`,
			statusCode: http.StatusOK,
			req:        domain.CompletionRequest{Messages: userMsg},
			expectedResp: domain.CompletionResponse{
				Content:       "Hello!",
				FunctionCalls: []domain.CompletionFunctionCall{},
				Usage:         domain.CompletionUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			},
			validateReq: func(t *testing.T, req ChatRequest) {
				assert.Equal(t, "Qwen/Qwen2.5-7B-Instruct", req.Model)
				assert.InDelta(t, 0.7, *req.Temperature, 1e-9)
				assert.Equal(t, 512, *req.MaxTokens)
				assert.InDelta(t, 0.7, *req.TopP, 1e-9)
				assert.Equal(t, 50, *req.TopK)
				assert.InDelta(t, 0.5, *req.FrequencyPenalty, 1e-9)
				assert.Equal(t, 1, *req.N)
				assert.Nil(t, req.ResponseFormat)
				assert.Empty(t, req.Tools)
				assert.Nil(t, req.ToolChoice)
			},
		},
		"function-call-with-forced-choice": {
			response: `{"choices":[{"message":{"role":"assistant","tool_calls":[` +
				`{"id":"1","type":"function","function":{"name":"select_intent","arguments":"{\"intent\":\"calculator\"}"}}]}}]}`,
			statusCode: http.StatusOK,
			req: domain.CompletionRequest{
				Messages: userMsg,
				Functions: []domain.CompletionFunction{{
					Name:        "select_intent",
					Description: "Select the intent",
					Parameters:  &jsonschema.Schema{Type: "object", Required: []string{"intent"}},
				}},
				ForceFunction: "select_intent",
				Temperature:   common.Ptr(0.0),
			},
			expectedResp: domain.CompletionResponse{
				FunctionCalls: []domain.CompletionFunctionCall{{Name: "select_intent", Arguments: `{"intent":"calculator"}`}},
			},
			validateReq: func(t *testing.T, req ChatRequest) {
				require.Len(t, req.Tools, 1)
				assert.Equal(t, "function", req.Tools[0].Type)
				assert.Equal(t, "select_intent", req.Tools[0].Function.Name)
				params, ok := req.Tools[0].Function.Parameters.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "object", params["type"])
				choice, ok := req.ToolChoice.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, map[string]any{"name": "select_intent"}, choice["function"])
				assert.InDelta(t, 0.0, *req.Temperature, 1e-9)
			},
		},
		"json-response-format-and-timings-usage": {
			response:   `{"choices":[{"message":{"content":"{\"parameters\":{}}"}}],"timings":{"prompt_n":7,"predicted_n":3}}`,
			statusCode: http.StatusOK,
			req:        domain.CompletionRequest{Messages: userMsg, JSONResponse: true},
			expectedResp: domain.CompletionResponse{
				Content:       `{"parameters":{}}`,
				FunctionCalls: []domain.CompletionFunctionCall{},
				Usage:         domain.CompletionUsage{PromptTokens: 7, CompletionTokens: 3, TotalTokens: 10},
			},
			validateReq: func(t *testing.T, req ChatRequest) {
				require.NotNil(t, req.ResponseFormat)
				assert.Equal(t, "json_object", req.ResponseFormat.Type)
			},
		},
		"no-choices": {
			response:    `{"choices":[]}`,
			statusCode:  http.StatusOK,
			req:         domain.CompletionRequest{Messages: userMsg},
			expectedErr: domain.ErrCompletionMalformed,
		},
		"server-error": {
			response:    `Internal Server Error`,
			statusCode:  http.StatusInternalServerError,
			req:         domain.CompletionRequest{Messages: userMsg},
			expectedErr: domain.ErrCompletionTransport,
		},
		"invalid-json": {
			response:    `{invalid json}`,
			statusCode:  http.StatusOK,
			req:         domain.CompletionRequest{Messages: userMsg},
			expectedErr: domain.ErrCompletionMalformed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var captured ChatRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				json.NewDecoder(r.Body).Decode(&captured) //nolint:errcheck
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			gateway := NewCompletionGateway(
				NewCompletionClient(server.URL, "secret", server.Client()),
				DefaultGenerationSettings(),
				5*time.Second,
			)

			resp, err := gateway.Complete(context.Background(), tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResp, resp)
			if tt.validateReq != nil {
				tt.validateReq(t, captured)
			}
		})
	}
}

func TestCompletionGateway_Complete_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	gateway := NewCompletionGateway(
		NewCompletionClient(server.URL, "", server.Client()),
		DefaultGenerationSettings(),
		50*time.Millisecond,
	)

	_, err := gateway.Complete(context.Background(), domain.CompletionRequest{
		Messages: []domain.CompletionMessage{{Role: domain.ChatRole_User, Content: "hi"}},
	})
	assert.ErrorIs(t, err, domain.ErrCompletionTransport)
}

func TestCompletionGateway_Complete_Unreachable(t *testing.T) {
	gateway := NewCompletionGateway(
		NewCompletionClient("http://127.0.0.1:1", "", http.DefaultClient),
		DefaultGenerationSettings(),
		time.Second,
	)

	_, err := gateway.Complete(context.Background(), domain.CompletionRequest{
		Messages: []domain.CompletionMessage{{Role: domain.ChatRole_User, Content: "hi"}},
	})
	assert.ErrorIs(t, err, domain.ErrCompletionTransport)
}

func TestCompletionClient_Chat_ValidationErrors(t *testing.T) {
	client := NewCompletionClient("http://localhost", "", http.DefaultClient)

	tests := map[string]struct {
		req ChatRequest
	}{
		"no-model":    {req: ChatRequest{Messages: []ChatMessage{{Role: "user", Content: "hi"}}}},
		"no-messages": {req: ChatRequest{Model: "test"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := client.Chat(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestInitCompletionGateway_Initialize(t *testing.T) {
	tests := map[string]struct {
		init      InitCompletionGateway
		expectErr bool
	}{
		"success": {
			init: InitCompletionGateway{
				HttpClient:       http.DefaultClient,
				LLMHost:          "http://localhost:12434",
				APIKey:           "-",
				Model:            "test-model",
				Temperature:      "0.2",
				MaxTokens:        256,
				TopP:             "0.9",
				TopK:             40,
				FrequencyPenalty: "0",
				CallTimeout:      time.Second,
			},
		},
		"invalid-temperature": {
			init: InitCompletionGateway{
				HttpClient:       http.DefaultClient,
				Temperature:      "warm",
				TopP:             "0.9",
				FrequencyPenalty: "0",
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			gw, err := depend.Resolve[domain.CompletionGateway]()
			require.NoError(t, err)
			cg, ok := gw.(CompletionGateway)
			require.True(t, ok)
			assert.Equal(t, GenerationSettings{
				Model:            "test-model",
				Temperature:      0.2,
				MaxTokens:        256,
				TopP:             0.9,
				TopK:             40,
				FrequencyPenalty: 0,
				N:                1,
			}, cg.settings)
			assert.Empty(t, cg.client.apiKey)
		})
	}
}
