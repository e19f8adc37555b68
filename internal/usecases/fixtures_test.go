package usecases

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func meetingTool() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "book_meeting",
		Description: "Book a meeting",
		ProviderID:  "calendar",
		Schema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"attendees": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				"date":      {Type: "string", Format: "date"},
				"time":      {Type: "string"},
				"duration":  {Type: "string"},
				"topic":     {Type: "string"},
			},
			Required: []string{"attendees", "date", "time"},
		},
	}
}

func calculatorTool() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "calculator",
		Description: "Basic arithmetic",
		ProviderID:  "math",
		Schema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"operation": {Type: "string", Enum: []any{"add", "subtract", "multiply", "divide"}},
				"a":         {Type: "number"},
				"b":         {Type: "number"},
			},
			Required: []string{"operation", "a", "b"},
		},
	}
}

func fixedClock(t *testing.T) *domain.MockCurrentTimeProvider {
	clock := domain.NewMockCurrentTimeProvider(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	return clock
}

// lastContent returns the content of the last message of a completion request.
func lastContent(req domain.CompletionRequest) string {
	if len(req.Messages) == 0 {
		return ""
	}
	return req.Messages[len(req.Messages)-1].Content
}
