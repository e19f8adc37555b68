package domain

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"
)

// CollectedParameters maps parameter names to the values gathered for one tool call.
type CollectedParameters map[string]any

// IsMissingValue reports whether a present value still counts as missing:
// nil, a blank string or an empty array. Every other value, including zero
// numbers, false and empty objects, counts as provided.
func IsMissingValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Has reports whether the named parameter holds a non-missing value.
func (cp CollectedParameters) Has(name string) bool {
	v, ok := cp[name]
	return ok && !IsMissingValue(v)
}

// Clone returns a copy whose list values do not share backing arrays with cp.
func (cp CollectedParameters) Clone() CollectedParameters {
	out := make(CollectedParameters, len(cp))
	for k, v := range cp {
		if list, ok := v.([]any); ok {
			out[k] = slices.Clone(list)
			continue
		}
		out[k] = v
	}
	return out
}

// Merge folds newly extracted values into a copy of the collected set.
// Array parameters accumulate by union without duplicates. Scalars are replaced
// only by non-missing values. Names the tool does not declare are dropped.
func (cp CollectedParameters) Merge(extracted map[string]any, tool ToolDescriptor) CollectedParameters {
	out := cp.Clone()
	for _, name := range slices.Sorted(maps.Keys(extracted)) {
		v := extracted[name]
		if IsMissingValue(v) || !tool.DeclaresParameter(name) {
			continue
		}
		if tool.IsArrayParameter(name) || isList(v) || isList(out[name]) {
			out[name] = unionValues(toList(out[name]), toList(v))
			continue
		}
		out[name] = normalizeScalar(v)
	}
	return out
}

// MissingRequired returns the required parameters of tool that are absent or missing.
func (cp CollectedParameters) MissingRequired(tool ToolDescriptor) []string {
	missing := []string{}
	for _, name := range tool.RequiredParameters() {
		if !cp.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// NormalizeDates rewrites string values of parameters declared with format "date" as YYYY-MM-DD.
// Values that cannot be understood as a date are kept as they are.
func (cp CollectedParameters) NormalizeDates(tool ToolDescriptor, ref time.Time) CollectedParameters {
	out := cp.Clone()
	for name, v := range out {
		p, ok := tool.Parameter(name)
		if !ok || p.Format != "date" {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if normalized, ok := NormalizeDate(s, ref); ok {
			out[name] = normalized
		}
	}
	return out
}

// Describe renders the collected values as "- name: value" lines following the tool's parameter order.
func (cp CollectedParameters) Describe(tool ToolDescriptor) string {
	names := tool.ParameterNames()
	for _, name := range slices.Sorted(maps.Keys(cp)) {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	lines := make([]string, 0, len(cp))
	for _, name := range names {
		if !cp.Has(name) {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", name, FormatValue(cp[name])))
	}
	return strings.Join(lines, "\n")
}

// FormatValue renders a parameter value for humans.
func FormatValue(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(string); ok {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func toList(v any) []any {
	if IsMissingValue(v) {
		return nil
	}
	if list, ok := v.([]any); ok {
		return list
	}
	if !isList(v) {
		return []any{v}
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func unionValues(current, incoming []any) []any {
	out := make([]any, 0, len(current)+len(incoming))
	for _, v := range slices.Concat(current, incoming) {
		if IsMissingValue(v) {
			continue
		}
		v = normalizeScalar(v)
		if slices.ContainsFunc(out, func(e any) bool { return reflect.DeepEqual(e, v) }) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func normalizeScalar(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}
