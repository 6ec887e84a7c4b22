package i18n

import (
	"sort"
	"strings"
)

// FlattenKeys converts a nested translation map into the complete sorted,
// deduplicated list of dotted keys reachable at its leaves.
//
// A value counts as a leaf exactly when it is not a nested mapping; empty
// strings, zeroes, false and nil all yield a key. A non-empty nested mapping
// is descended into; an empty one contributes nothing for its branch. Path
// segments are trimmed of surrounding whitespace and segments that become
// empty are dropped rather than emitted as empty key components.
func FlattenKeys(data map[string]any) []string {
	seen := make(map[string]struct{})
	flattenInto(data, nil, seen)

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func flattenInto(data map[string]any, path []string, seen map[string]struct{}) {
	for key, value := range data {
		segments := append(path, key)
		if node, ok := asNode(value); ok {
			if len(node) > 0 {
				flattenInto(node, segments, seen)
			}
			continue
		}
		if dotted := JoinKey(segments...); dotted != "" {
			seen[dotted] = struct{}{}
		}
	}
}

// JoinKey merges path segments into a dotted key. Segments are trimmed of
// surrounding whitespace and dots; segments empty after trimming are skipped.
func JoinKey(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		part := strings.Trim(strings.TrimSpace(segment), ".")
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ".")
}

// asNode normalizes a value into a string-keyed mapping. YAML decoders may
// produce map[any]any for nested levels; entries with non-string keys are
// ignored, mirroring how such keys can never be addressed by a dotted key.
func asNode(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		node := make(map[string]any, len(v))
		for key, val := range v {
			if ks, ok := key.(string); ok {
				node[ks] = val
			}
		}
		return node, true
	default:
		return nil, false
	}
}
