// Package i18n loads translation dictionaries from structured config files
// and resolves dotted keys against them.
//
// A dictionary is an arbitrarily nested string-keyed mapping. Each language
// lives in its own source file; one more source file holds the shared
// environment values. The package exposes three building blocks:
//
//   - FlattenKeys converts a nested mapping into the complete sorted list of
//     dotted keys reachable at its leaves.
//   - Resolve walks a dotted key through a nested mapping and returns the
//     leaf value as text, degrading to a caller-supplied fallback for any
//     key that cannot be resolved. It is total: it never panics and never
//     returns an error.
//   - Catalog discovers and loads all language sources from a directory plus
//     the environment source, computing the flattened key list for each. It
//     is immutable after construction.
//
// Parsing is pluggable through the Parser interface; YAML and JSON parsers
// are included.
//
// # Usage
//
//	catalog, err := i18n.LoadCatalog(ctx, "lang", "env.yml", i18n.NewYAMLParser())
//	if err != nil {
//		log.Fatalf("loading catalog: %v", err)
//	}
//
//	entry, ok := catalog.Language("en.yml")
//	if !ok {
//		log.Fatal("language not discovered")
//	}
//
//	for _, key := range entry.Keys {
//		text := i18n.Resolve(key, entry.Data, "i18n:"+key)
//		// text is the translated value, or the placeholder token when the
//		// key cannot be resolved.
//		_ = text
//	}
//
// # Guarantees
//
// Every key produced by FlattenKeys on a mapping resolves successfully
// against that same mapping. Resolve returns the supplied fallback unchanged
// for any key outside that set, including empty and whitespace-only keys.
package i18n
