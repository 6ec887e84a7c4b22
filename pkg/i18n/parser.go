package i18n

import "context"

// Parser turns the raw content of a single translation source into a nested
// string-keyed mapping. One source file holds one dictionary.
type Parser interface {
	// Parse parses content and returns the nested translation map.
	// A source that parses to nothing (empty document, null) is an error:
	// every loaded dictionary must be a non-nil mapping.
	Parse(ctx context.Context, content string) (map[string]any, error)

	// SupportsFileExtension reports whether the parser handles files with
	// the given extension (without the leading dot, case-insensitive).
	SupportsFileExtension(ext string) bool
}
