// Package sanitize normalizes untrusted input before it reaches storage or
// an HTML context. Keys that look like query-injection operators are dropped
// and executable markup is stripped from free-text strings.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// scriptPattern removes script elements with their contents; tagPattern
	// removes any remaining markup.
	scriptPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
)

// Strip normalizes a free-text string: trims surrounding whitespace, drops
// the query-operator character and removes executable markup.
func Strip(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = scriptPattern.ReplaceAllString(s, "")
	s = tagPattern.ReplaceAllString(s, "")
	return s
}

// CleanValue sanitizes an arbitrary decoded JSON value recursively.
func CleanValue(v any) any {
	switch val := v.(type) {
	case string:
		return Strip(val)
	case map[string]any:
		return CleanMap(val)
	case []any:
		for i := range val {
			val[i] = CleanValue(val[i])
		}
		return val
	default:
		return v
	}
}

// CleanMap drops keys beginning with the reserved operator prefix or
// containing a path separator, recursively, and sanitizes remaining values.
func CleanMap(m map[string]any) map[string]any {
	for key, value := range m {
		if strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
			delete(m, key)
			continue
		}
		m[key] = CleanValue(value)
	}
	return m
}
