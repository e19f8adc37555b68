package domain

import (
	"errors"
	"fmt"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

var (
	// ErrConfig marks unreadable or malformed provider configuration.
	ErrConfig = errors.New("invalid provider configuration")
	// ErrConnect marks a transport failure while connecting to a provider.
	ErrConnect = errors.New("provider connection failed")
	// ErrNoToolsAdvertised marks a provider whose discovery returned no tools.
	ErrNoToolsAdvertised = errors.New("provider advertised no tools")
	// ErrToolNotFound marks a tool name absent from the aggregated catalog.
	ErrToolNotFound = errors.New("tool not found")
	// ErrProviderUnavailable marks a tool whose owning provider is not connected.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrInvocation marks a provider-side failure while executing a tool.
	ErrInvocation = errors.New("tool invocation failed")
	// ErrToolSchemaNotFound marks a tool whose parameter schema cannot be resolved.
	ErrToolSchemaNotFound = errors.New("tool schema not found")
	// ErrExtractionService marks a completion failure during parameter extraction.
	ErrExtractionService = errors.New("extraction service error")
	// ErrMalformedExtractionResponse marks an extraction reply that is not the expected JSON shape.
	ErrMalformedExtractionResponse = errors.New("malformed extraction response")
	// ErrCompletionTransport marks a non-success status or transport failure of the completion service.
	ErrCompletionTransport = errors.New("completion service unavailable")
	// ErrCompletionMalformed marks an unparsable completion service body.
	ErrCompletionMalformed = errors.New("malformed completion response")
	// ErrWorkflowNotFound marks a conversation without an active workflow.
	ErrWorkflowNotFound = errors.New("workflow not found")
)

// ProviderErr carries the provider and tool involved in a mechanical-layer failure.
type ProviderErr struct {
	ProviderID string
	ToolName   string
	Err        error
}

// NewProviderErr creates a new ProviderErr.
func NewProviderErr(providerID, toolName string, err error) *ProviderErr {
	return &ProviderErr{ProviderID: providerID, ToolName: toolName, Err: err}
}

// Error returns the error message.
func (e *ProviderErr) Error() string {
	if e.ToolName == "" {
		return fmt.Sprintf("provider %q: %v", e.ProviderID, e.Err)
	}
	return fmt.Sprintf("provider %q tool %q: %v", e.ProviderID, e.ToolName, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderErr) Unwrap() error {
	return e.Err
}

// InvocationErr is returned when a provider reports an error for a tool call.
// Payload holds the provider's raw error content.
type InvocationErr struct {
	ProviderID string
	ToolName   string
	Payload    string
}

// Error returns the error message.
func (e *InvocationErr) Error() string {
	return fmt.Sprintf("provider %q tool %q: %v: %s", e.ProviderID, e.ToolName, ErrInvocation, e.Payload)
}

// Is reports ErrInvocation equivalence.
func (e *InvocationErr) Is(target error) bool {
	return target == ErrInvocation
}

// ConfigErr is returned when provider configuration cannot be read or is malformed.
type ConfigErr struct {
	Source string
	Reason string
}

// NewConfigErr creates a new ConfigErr.
func NewConfigErr(source, reason string) *ConfigErr {
	return &ConfigErr{Source: source, Reason: reason}
}

// Error returns the error message.
func (e *ConfigErr) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrConfig, e.Source, e.Reason)
}

// Is reports ErrConfig equivalence.
func (e *ConfigErr) Is(target error) bool {
	return target == ErrConfig
}
