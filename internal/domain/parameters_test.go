package domain

import (
	"testing"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meetingTool() ToolDescriptor {
	return ToolDescriptor{
		Name:       "book_meeting",
		ProviderID: "calendar",
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

func TestIsMissingValue(t *testing.T) {
	tests := map[string]struct {
		value    any
		expected bool
	}{
		"nil":           {value: nil, expected: true},
		"empty-string":  {value: "", expected: true},
		"blank-string":  {value: "   ", expected: true},
		"empty-array":   {value: []any{}, expected: true},
		"empty-strings": {value: []string{}, expected: true},
		"nil-slice":     {value: []any(nil), expected: true},
		"zero-number":   {value: 0, expected: false},
		"zero-float":    {value: 0.0, expected: false},
		"false":         {value: false, expected: false},
		"empty-object":  {value: map[string]any{}, expected: false},
		"text":          {value: "张三", expected: false},
		"list":          {value: []any{"张三"}, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMissingValue(tt.value))
		})
	}
}

func TestCollectedParameters_MissingRequired(t *testing.T) {
	tool := meetingTool()

	tests := map[string]struct {
		collected CollectedParameters
		expected  []string
	}{
		"absent-keys": {
			collected: CollectedParameters{},
			expected:  []string{"attendees", "date", "time"},
		},
		"null-empty-array-and-blank-string": {
			collected: CollectedParameters{"attendees": []any{}, "date": nil, "time": " "},
			expected:  []string{"attendees", "date", "time"},
		},
		"optional-missing-is-ignored": {
			collected: CollectedParameters{"attendees": []any{"张三"}, "date": "2026-10-19", "time": "15:00"},
			expected:  []string{},
		},
		"zero-values-are-present": {
			collected: CollectedParameters{"attendees": []any{0}, "date": false, "time": 0},
			expected:  []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.collected.MissingRequired(tool))
		})
	}
}

func TestCollectedParameters_Merge(t *testing.T) {
	tool := meetingTool()

	tests := map[string]struct {
		collected CollectedParameters
		extracted map[string]any
		expected  CollectedParameters
	}{
		"array-union-dedup": {
			collected: CollectedParameters{"attendees": []any{"张三"}},
			extracted: map[string]any{"attendees": []any{"张三", "李四"}},
			expected:  CollectedParameters{"attendees": []any{"张三", "李四"}},
		},
		"scalar-into-array-parameter": {
			collected: CollectedParameters{"attendees": []any{"张三"}},
			extracted: map[string]any{"attendees": "李四"},
			expected:  CollectedParameters{"attendees": []any{"张三", "李四"}},
		},
		"typed-slice-is-unioned": {
			collected: CollectedParameters{},
			extracted: map[string]any{"attendees": []string{"王五", "王五"}},
			expected:  CollectedParameters{"attendees": []any{"王五"}},
		},
		"scalar-overwritten-by-non-empty": {
			collected: CollectedParameters{"time": "14:00"},
			extracted: map[string]any{"time": "15:00"},
			expected:  CollectedParameters{"time": "15:00"},
		},
		"scalar-kept-on-empty": {
			collected: CollectedParameters{"time": "14:00", "topic": "周会"},
			extracted: map[string]any{"time": "", "topic": nil},
			expected:  CollectedParameters{"time": "14:00", "topic": "周会"},
		},
		"empty-array-keeps-current": {
			collected: CollectedParameters{"attendees": []any{"张三"}},
			extracted: map[string]any{"attendees": []any{}},
			expected:  CollectedParameters{"attendees": []any{"张三"}},
		},
		"undeclared-parameter-is-dropped": {
			collected: CollectedParameters{"time": "14:00"},
			extracted: map[string]any{"room": "A1", "date": "2026-10-19"},
			expected:  CollectedParameters{"time": "14:00", "date": "2026-10-19"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			before := tt.collected.Clone()
			got := tt.collected.Merge(tt.extracted, tool)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, before, tt.collected, "merge must not mutate the receiver")
		})
	}
}

func TestCollectedParameters_Merge_AcrossTurns(t *testing.T) {
	tool := meetingTool()

	collected := CollectedParameters{}.Merge(map[string]any{"attendees": []any{"张三"}}, tool)
	collected = collected.Merge(map[string]any{"attendees": []any{"张三", "李四"}}, tool)

	assert.Equal(t, []any{"张三", "李四"}, collected["attendees"])
}

func TestCollectedParameters_Merge_UndeclaredKeysPassStrictValidation(t *testing.T) {
	type bookMeetingArgs struct {
		Attendees []string `json:"attendees"`
		Date      string   `json:"date"`
		Time      string   `json:"time"`
		Topic     string   `json:"topic,omitempty"`
	}
	schema, err := jsonschema.For[bookMeetingArgs](nil)
	require.NoError(t, err)
	tool := ToolDescriptor{Name: "book_meeting", ProviderID: "calendar", Schema: schema}

	collected := CollectedParameters{}.Merge(map[string]any{
		"attendees": []any{"张三"},
		"date":      "2026-10-19",
		"time":      "15:00",
		"location":  "A101",
	}, tool)

	assert.Empty(t, collected.MissingRequired(tool))
	assert.NotContains(t, collected, "location")
	assert.NoError(t, tool.ValidateArguments(collected))
}

func TestCollectedParameters_NormalizeDates(t *testing.T) {
	tool := meetingTool()
	ref := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	got := CollectedParameters{"date": "明天", "time": "明天下午3点"}.NormalizeDates(tool, ref)

	assert.Equal(t, "2026-10-19", got["date"])
	assert.Equal(t, "明天下午3点", got["time"], "only date-formatted parameters are normalized")
}

func TestCollectedParameters_Describe(t *testing.T) {
	tool := meetingTool()
	collected := CollectedParameters{
		"topic":     "周会",
		"attendees": []any{"张三", "李四"},
		"date":      "2026-10-19",
		"time":      "",
	}

	assert.Equal(t,
		"- attendees: 张三, 李四\n- date: 2026-10-19\n- topic: 周会",
		collected.Describe(tool),
	)
}
