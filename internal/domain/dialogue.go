package domain

import "context"

// IntentKind tells whether an utterance names a tool or is ordinary conversation.
type IntentKind string

const (
	IntentKind_Tool         IntentKind = "mcp"
	IntentKind_Conversation IntentKind = "conversation"
)

// IntentResult is the outcome of classifying one utterance.
type IntentResult struct {
	Kind IntentKind
	// ToolName is set when Kind is IntentKind_Tool.
	ToolName string
	// Parameters holds arguments the classifier already recognized.
	Parameters map[string]any
}

// IntentClassifier decides whether an utterance requests one of the known tools.
type IntentClassifier interface {
	Classify(ctx context.Context, utterance string, tools []ToolDescriptor) (IntentResult, error)
}

// ExtractionRequest holds the input of one parameter extraction.
type ExtractionRequest struct {
	Utterance string
	Tool      ToolDescriptor
	Collected CollectedParameters
	// Missing narrows the extraction to the listed parameters.
	Missing []string
}

// ExtractionResult holds the merged parameters and what the extractor reported as missing.
type ExtractionResult struct {
	Parameters CollectedParameters
	Missing    []string
}

// ParameterExtractor pulls structured tool arguments out of free-form text.
type ParameterExtractor interface {
	Extract(ctx context.Context, req ExtractionRequest) (ExtractionResult, error)
}

// PromptRequest holds the input for asking the user for missing parameters.
type PromptRequest struct {
	Tool      ToolDescriptor
	Collected CollectedParameters
	Missing   []string
}

// PromptGenerator writes the natural-language request for missing parameters.
type PromptGenerator interface {
	GeneratePrompt(ctx context.Context, req PromptRequest) (string, error)
}

// ChatResponder produces a conversational reply for utterances that request no tool.
type ChatResponder interface {
	Reply(ctx context.Context, utterance string) (string, error)
}
