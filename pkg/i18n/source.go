package i18n

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one loaded dictionary: its nested translation map and the sorted
// flattened key list computed from it. Both are read-only after load.
type Entry struct {
	Data map[string]any
	Keys []string
}

// loadSource reads and parses a single translation source into an Entry.
func loadSource(ctx context.Context, parser Parser, path string) (Entry, error) {
	if parser == nil {
		return Entry{}, ErrNilParser
	}
	if err := ctx.Err(); err != nil {
		return Entry{}, errors.Join(ErrLoadCancelled, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return Entry{}, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}

	data, err := parser.Parse(ctx, string(content))
	if err != nil {
		return Entry{}, errors.Join(ErrFailedToParseFile, err)
	}
	if data == nil {
		return Entry{}, fmt.Errorf("%w: parser returned nil map for %s", ErrFailedToParseFile, path)
	}

	return Entry{Data: data, Keys: FlattenKeys(data)}, nil
}

// discoverSources lists the filenames in dir whose extension the parser
// supports, sorted by filename. A path that does not exist or is not a
// directory yields an empty list, not an error: an absent language directory
// simply means no languages are available.
func discoverSources(dir string, parser Parser) ([]string, error) {
	if parser == nil {
		return nil, ErrNilParser
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		if !parser.SupportsFileExtension(ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
