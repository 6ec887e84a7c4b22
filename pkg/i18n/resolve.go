package i18n

import (
	"fmt"
	"strings"
)

// SplitKey splits a dotted key into its path segments. Segments are trimmed
// of surrounding whitespace; segments empty after trimming are dropped. An
// empty or whitespace-only key yields no segments.
func SplitKey(key string) []string {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	segments := make([]string, 0, strings.Count(key, ".")+1)
	for _, part := range strings.Split(key, ".") {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Resolve walks a dotted key through a nested translation map and returns
// the leaf value as text. It degrades to fallback whenever the key cannot be
// resolved: an empty key, a missing segment, a scalar hit before the path is
// exhausted, or a nil leaf. String leaves are returned as-is; any other
// final value, nested mappings included, is coerced to its textual
// representation, honoring fmt.Stringer.
//
// Resolve is total: it never panics and never returns an error for
// malformed input, only ever text.
func Resolve(key string, data map[string]any, fallback string) string {
	segments := SplitKey(key)
	if len(segments) == 0 {
		return fallback
	}

	current := data
	for i, segment := range segments {
		if current == nil {
			return fallback
		}
		value, ok := current[segment]
		if !ok {
			return fallback
		}
		if i == len(segments)-1 {
			return leafText(value, fallback)
		}
		node, ok := asNode(value)
		if !ok {
			return fallback
		}
		current = node
	}

	return fallback
}

// leafText coerces a resolved final value to text. Only nil degrades to
// fallback; a path that stops on a nested mapping yields that mapping's
// textual form, same as any other non-string value.
func leafText(value any, fallback string) string {
	if value == nil {
		return fallback
	}
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
