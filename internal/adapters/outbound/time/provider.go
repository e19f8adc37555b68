package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the standard time package.
// Relative dates such as "明天" are resolved against this clock, so it reports time in the configured zone.
type CurrentTimeProvider struct {
	loc *time.Location
}

// NewCurrentTimeProvider creates a provider reporting time in loc. A nil loc means time.Local.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	if loc == nil {
		loc = time.Local
	}
	return CurrentTimeProvider{loc: loc}
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.loc == nil {
		return time.Now()
	}
	return time.Now().In(ts.loc)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	TimeZone string `config:"TIME_ZONE" default:"Local"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(its.TimeZone)
	if err != nil {
		return ctx, fmt.Errorf("invalid TIME_ZONE %q: %w", its.TimeZone, err)
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
