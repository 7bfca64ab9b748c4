// Package sanitize carries over the legacy input filtering of the admin
// pages. Stripping angle brackets and javascript: URLs is NOT output encoding
// and NOT a real HTML sanitizer; it exists for compatibility with the backend
// that expects pre-filtered values. Render-side escaping stays the caller's job.
package sanitize

import "regexp"

var (
	angleBrackets  = regexp.MustCompile(`[<>]`)
	jsProtocol     = regexp.MustCompile(`(?i)javascript:`)
	eventHandlers  = regexp.MustCompile(`(?i)on\w+\s*=`)
	dangerousCalls = regexp.MustCompile(`(?i)\b(alert|confirm|prompt|console|window|document|eval|setTimeout|setInterval)(\s*\()`)
)

// Clean strips the patterns the legacy filter stripped.
func Clean(input string) string {
	out := angleBrackets.ReplaceAllString(input, "")
	out = jsProtocol.ReplaceAllString(out, "")
	out = eventHandlers.ReplaceAllString(out, "")
	out = dangerousCalls.ReplaceAllString(out, "x$1$2")
	return out
}

// Value cleans strings recursively through maps and slices and leaves every
// other type untouched.
func Value(input any) any {
	switch v := input.(type) {
	case string:
		return Clean(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Value(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Value(item)
		}
		return out
	default:
		return input
	}
}
