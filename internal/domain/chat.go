package domain

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
)

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
)

// CompletionMessage is one message sent to the completion service.
type CompletionMessage struct {
	Role    ChatRole `yaml:"role"`
	Content string   `yaml:"content"`
}

// CompletionFunction describes a function the model may call.
type CompletionFunction struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
}

// CompletionRequest is the domain request for one completion call.
type CompletionRequest struct {
	Messages  []CompletionMessage
	Functions []CompletionFunction
	// ForceFunction asks the model to call the named function.
	ForceFunction string
	// JSONResponse asks the model to answer with a JSON object.
	JSONResponse bool
	// Optional generation overrides; gateway defaults apply when nil.
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// CompletionFunctionCall is a function call returned by the model.
type CompletionFunctionCall struct {
	Name      string
	Arguments string
}

// CompletionUsage contains token usage for one completion.
type CompletionUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionResponse is the normalized reply of the completion service.
type CompletionResponse struct {
	Content       string
	FunctionCalls []CompletionFunctionCall
	Usage         CompletionUsage
}

// CompletionGateway is the single entry point to the external completion service.
// Transport and non-success statuses surface as ErrCompletionTransport and
// unparsable bodies as ErrCompletionMalformed.
type CompletionGateway interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}
