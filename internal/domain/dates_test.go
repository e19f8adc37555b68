package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTimeFromText(t *testing.T) {
	loc := time.UTC
	ref := time.Date(2026, 1, 27, 10, 0, 0, 0, loc) // Tuesday

	tests := map[string]struct {
		text     string
		expected time.Time
		ok       bool
	}{
		"today": {
			text:     "I need to finish this today",
			expected: time.Date(2026, 1, 27, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"tomorrow": {
			text:     "Let's meet tomorrow",
			expected: time.Date(2026, 1, 28, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"chinese-tomorrow": {
			text:     "明天下午3点",
			expected: time.Date(2026, 1, 28, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"chinese-day-after-tomorrow": {
			text:     "后天上午开会",
			expected: time.Date(2026, 1, 29, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"chinese-three-days": {
			text:     "大后天",
			expected: time.Date(2026, 1, 30, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"chinese-full-date": {
			text:     "安排在2026年2月5日",
			expected: time.Date(2026, 2, 5, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"next-monday": {
			text:     "due next monday",
			expected: time.Date(2026, 2, 2, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"next-day-same-weekday": {
			text:     "next tuesday",
			expected: time.Date(2026, 2, 3, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"iso-date-format": {
			text:     "date: 2026-02-15",
			expected: time.Date(2026, 2, 15, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"slash-date-format": {
			text:     "2026/3/9",
			expected: time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"month-day-year-format": {
			text:     "on January 10, 2026",
			expected: time.Date(2026, 1, 10, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"case-insensitive": {
			text:     "by TOMORROW",
			expected: time.Date(2026, 1, 28, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"no-date-found": {
			text: "no date mentioned here",
			ok:   false,
		},
		"multiple-dates-returns-first": {
			text:     "start today and finish tomorrow",
			expected: time.Date(2026, 1, 27, 0, 0, 0, 0, loc),
			ok:       true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractTimeFromText(tt.text, ref, loc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	ref := time.Date(2026, 10, 18, 15, 4, 0, 0, time.UTC)

	tests := map[string]struct {
		text     string
		expected string
		ok       bool
	}{
		"relative": {text: "明天", expected: "2026-10-19", ok: true},
		"iso":      {text: "2026-12-01", expected: "2026-12-01", ok: true},
		"unknown":  {text: "sometime", ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.text, ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveRelative(t *testing.T) {
	loc := time.UTC
	ref := time.Date(2026, 1, 27, 10, 0, 0, 0, loc) // Tuesday

	tests := map[string]struct {
		token    string
		expected time.Time
		ok       bool
	}{
		"yesterday": {
			token:    "yesterday",
			expected: time.Date(2026, 1, 26, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"chinese-yesterday": {
			token:    "昨天",
			expected: time.Date(2026, 1, 26, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"next-sunday": {
			token:    "next sunday",
			expected: time.Date(2026, 2, 1, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"next-invalid-day": {
			token: "next someday",
			ok:    false,
		},
		"not-relative": {
			token: "2026-01-01",
			ok:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := resolveRelative(tt.token, ref, loc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
