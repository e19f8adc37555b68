package aggregator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeSuccess   = "success"
	outcomeToolError = "tool_error"
	outcomeFailure   = "failure"
)

var (
	meter           = otel.Meter("aggregator")
	ToolInvocations        metric.Int64Counter
	ToolInvocationDuration metric.Float64Histogram
	ProvidersUp            metric.Int64Gauge
)

func init() {
	var err error
	ToolInvocations, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total tool invocations routed to providers"),
	)
	if err != nil {
		panic(err)
	}

	ToolInvocationDuration, err = meter.Float64Histogram(
		"tool_invocation_duration_seconds",
		metric.WithDescription("Round trip time of tool calls to providers"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	ProvidersUp, err = meter.Int64Gauge(
		"providers_connected",
		metric.WithDescription("Number of connected tool providers"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolInvocation records one routed tool call with its outcome.
func RecordToolInvocation(ctx context.Context, providerID, toolName, outcome string) {
	ToolInvocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", providerID),
		attribute.String("tool", toolName),
		attribute.String("outcome", outcome),
	))
}

// RecordToolInvocationDuration records how long a provider took to answer a tool call.
func RecordToolInvocationDuration(ctx context.Context, providerID, toolName string, d time.Duration) {
	ToolInvocationDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("provider", providerID),
		attribute.String("tool", toolName),
	))
}
