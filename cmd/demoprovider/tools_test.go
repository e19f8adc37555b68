package main

import (
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) *sdk.ClientSession {
	t.Helper()
	clientTransport, serverTransport := sdk.NewInMemoryTransports()
	ss, err := newServer().Connect(t.Context(), serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := sdk.NewClient(&sdk.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(t.Context(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func resultText(r *sdk.CallToolResult) string {
	if len(r.Content) == 0 {
		return ""
	}
	if tc, ok := r.Content[0].(*sdk.TextContent); ok {
		return tc.Text
	}
	return ""
}

func TestDemoProvider_ListTools(t *testing.T) {
	cs := connect(t)

	res, err := cs.ListTools(t.Context(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"calculator", "book_meeting"}, names)
}

func TestDemoProvider_CallTool(t *testing.T) {
	tests := map[string]struct {
		tool         string
		args         map[string]any
		expectedText string
		expectError  bool
	}{
		"add": {
			tool:         "calculator",
			args:         map[string]any{"operation": "add", "a": 5, "b": 3},
			expectedText: "8",
		},
		"divide": {
			tool:         "calculator",
			args:         map[string]any{"operation": "divide", "a": 7, "b": 2},
			expectedText: "3.5",
		},
		"divide-by-zero": {
			tool:        "calculator",
			args:        map[string]any{"operation": "divide", "a": 1, "b": 0},
			expectError: true,
		},
		"book-meeting": {
			tool: "book_meeting",
			args: map[string]any{
				"attendees": []string{"张三", "李四"},
				"date":      "2026-10-19",
				"time":      "15:00",
				"topic":     "周会",
			},
			expectedText: "已预约 2026-10-19 15:00 的会议，参会人：张三、李四，主题：周会",
		},
		"book-meeting-bad-time": {
			tool: "book_meeting",
			args: map[string]any{
				"attendees": []string{"张三"},
				"date":      "2026-10-19",
				"time":      "afternoon",
			},
			expectError: true,
		},
	}

	cs := connect(t)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := cs.CallTool(t.Context(), &sdk.CallToolParams{Name: tt.tool, Arguments: tt.args})
			require.NoError(t, err)
			assert.Equal(t, tt.expectError, res.IsError)
			if !tt.expectError {
				assert.Equal(t, tt.expectedText, resultText(res))
			}
		})
	}
}
