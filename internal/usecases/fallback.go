package usecases

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tiered joins an intelligent tier with a deterministic one. When primary fails the
// failure is logged, counted and recorded on the current span, then fallback answers.
type tiered[T any] struct {
	component string
	logger    *log.Logger
	primary   func(ctx context.Context) (T, error)
	fallback  func(ctx context.Context) T
}

func (t tiered[T]) run(ctx context.Context) T {
	v, err := t.primary(ctx)
	if err == nil {
		return v
	}

	trace.SpanFromContext(ctx).AddEvent("fallback", trace.WithAttributes(
		attribute.String("component", t.component),
		attribute.String("cause", err.Error()),
	))
	t.logger.Printf("%s: falling back to rule tier: %v", t.component, err)
	RecordIntelligenceFallback(ctx, t.component)
	return t.fallback(ctx)
}
