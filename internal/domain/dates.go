package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the canonical layout of date parameters.
const DateLayout = "2006-01-02"

var datePhraseRe = regexp.MustCompile(
	`(?i)(` +
		`\d{4}[-/]\d{1,2}[-/]\d{1,2}` + // YYYY-MM-DD, YYYY/M/D
		`|` +
		`\d{4}年\d{1,2}月\d{1,2}[日号]` +
		`|` +
		`\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}\b` +
		`|` +
		`\b(?:today|tomorrow|yesterday)\b` +
		`|` +
		`\bnext\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b` +
		`|` +
		`大后天|后天|明天|今天|昨天` +
		`)`,
)

var cjkDateRe = regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})[日号]$`)

var relativeDayOffsets = map[string]int{
	"today":     0,
	"tomorrow":  1,
	"yesterday": -1,
	"今天":        0,
	"明天":        1,
	"后天":        2,
	"大后天":       3,
	"昨天":        -1,
}

// ExtractTimeFromText tries to extract a date from the given text.
func ExtractTimeFromText(
	text string,
	ref time.Time,
	loc *time.Location,
) (time.Time, bool) {

	m := datePhraseRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.ToLower(strings.TrimSpace(m[1]))

	if iso, ok := resolveRelative(token, ref, loc); ok {
		return iso, true
	}

	if cm := cjkDateRe.FindStringSubmatch(token); cm != nil {
		token = cm[1] + "/" + cm[2] + "/" + cm[3]
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// NormalizeDate rewrites a free-form date phrase as YYYY-MM-DD relative to ref.
func NormalizeDate(text string, ref time.Time) (string, bool) {
	t, ok := ExtractTimeFromText(text, ref, ref.Location())
	if !ok {
		return "", false
	}
	return t.Format(DateLayout), true
}

func resolveRelative(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = ref.In(loc)
	ref = dateOnly(ref)

	if offset, ok := relativeDayOffsets[token]; ok {
		return ref.AddDate(0, 0, offset), true
	}

	if after, ok := strings.CutPrefix(token, "next "); ok {
		wd, ok := parseWeekday(strings.TrimSpace(after))
		if !ok {
			return time.Time{}, false
		}
		return nextWeekday(ref, wd), true
	}

	return time.Time{}, false
}

func parseWeekday(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), s) {
			return wd, true
		}
	}
	return 0, false
}

func nextWeekday(ref time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
