package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                 = otel.Meter("usecases")
	LLMTokensUsed         metric.Int64Counter
	IntelligenceFallbacks metric.Int64Counter
	WorkflowTransitions   metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	IntelligenceFallbacks, err = meter.Int64Counter(
		"intelligence_fallbacks_total",
		metric.WithDescription("Total times a component answered with its deterministic fallback"),
	)
	if err != nil {
		panic(err)
	}

	WorkflowTransitions, err = meter.Int64Counter(
		"workflow_transitions_total",
		metric.WithDescription("Total slot-filling workflow state transitions"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordIntelligenceFallback records a component falling back to its rule-based tier.
func RecordIntelligenceFallback(ctx context.Context, component string) {
	IntelligenceFallbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
	))
}

// RecordWorkflowTransition records a workflow entering the given state.
func RecordWorkflowTransition(ctx context.Context, state string) {
	WorkflowTransitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("state", state),
	))
}
