package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
)

// Catalog holds every discovered language dictionary plus the shared
// environment dictionary, each with its flattened key list. It is populated
// once by LoadCatalog and immutable afterwards, which makes it safe to share
// for the lifetime of a run.
type Catalog struct {
	languages map[string]Entry
	names     []string
	env       Entry
	logger    *slog.Logger
}

// CatalogOption configures a Catalog during loading.
type CatalogOption func(*Catalog)

// WithLogger provides a logger for load progress. If not specified, a
// discard logger is used.
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// LoadCatalog discovers all language sources in langDir, loads each together
// with its flattened key list, and loads the environment source from envFile
// the same way.
//
// Loading fails fast when the environment source is missing or does not
// parse into a non-nil mapping, and when any discovered language source
// fails to load. A langDir that does not exist or contains no files the
// parser supports yields an empty language set, not an error.
//
// Language identifiers are the source filenames including extension, exactly
// as discovered on disk.
func LoadCatalog(ctx context.Context, langDir, envFile string, parser Parser, opts ...CatalogOption) (*Catalog, error) {
	c := &Catalog{
		languages: make(map[string]Entry),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	names, err := discoverSources(langDir, parser)
	if err != nil {
		return nil, fmt.Errorf("discovering language sources in %q: %w", langDir, err)
	}

	for _, name := range names {
		entry, err := loadSource(ctx, parser, filepath.Join(langDir, name))
		if err != nil {
			return nil, fmt.Errorf("loading language source %q: %w", name, err)
		}
		c.languages[name] = entry
		c.logger.InfoContext(ctx, "language source loaded", "file", name, "keys", len(entry.Keys))
	}
	c.names = names

	env, err := loadSource(ctx, parser, envFile)
	if err != nil {
		return nil, fmt.Errorf("loading environment source %q: %w", envFile, err)
	}
	c.env = env
	c.logger.InfoContext(ctx, "environment source loaded", "file", envFile, "keys", len(env.Keys))

	return c, nil
}

// Languages returns the discovered language identifiers sorted by filename.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.names)
}

// Has reports whether the given language identifier was discovered.
func (c *Catalog) Has(lang string) bool {
	_, ok := c.languages[lang]
	return ok
}

// Language returns the entry for the given language identifier.
func (c *Catalog) Language(lang string) (Entry, bool) {
	entry, ok := c.languages[lang]
	return entry, ok
}

// Env returns the shared environment entry.
func (c *Catalog) Env() Entry {
	return c.env
}
