package build

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// Namespaces of the placeholder tokens recognized in templates.
const (
	NamespaceI18n = "i18n"
	NamespaceEnv  = "env"
)

// Token builds the literal placeholder marker for a namespace and key, the
// exact text expected verbatim in the template.
func Token(namespace, key string) string {
	return namespace + ":" + key
}

// Engine rewrites an output file by replacing placeholder tokens with
// resolved dictionary values. One Render call is one full pass: the file is
// read once, every key in the list is applied to the in-memory contents, and
// the file is written back once. No partial writes are exposed.
type Engine struct {
	logger      *slog.Logger
	renderValue func(string) string
	force       bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithForce disables the non-HTML target guard, allowing substitutions to be
// written into files without an HTML suffix.
func WithForce(force bool) EngineOption {
	return func(e *Engine) {
		e.force = force
	}
}

// WithEngineLogger provides a logger for pass progress and soft failures.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMarkdown renders resolved values from Markdown to sanitized inline
// HTML before they are written into the page.
func WithMarkdown() EngineOption {
	return func(e *Engine) {
		e.renderValue = newMarkdownValueRenderer()
	}
}

// NewEngine creates a substitution engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logger.Component("engine"))
	return e
}

// RenderOption configures a single Render pass.
type RenderOption func(*renderConfig)

type renderConfig struct {
	valueFilter func(string) string
}

// WithValueFilter runs every resolved value through filter before it is
// written into the file. The pipeline uses this to substitute environment
// tokens that appear inside language values.
func WithValueFilter(filter func(string) string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.valueFilter = filter
	}
}

// Render performs one substitution pass over the file at path. For each key
// in keys (already sorted; the order is deterministic but semantically
// irrelevant since tokens are distinct literals), the placeholder token for
// (namespace, key) is replaced everywhere it occurs with the value resolved
// from data. The token itself is the resolve fallback, so a key absent from
// data leaves its placeholder untouched. A token that does not occur in the
// file is a no-op, not an error.
//
// Soft failures — a missing target file, a read or write the filesystem
// refuses — yield a Recovered result and the run continues; the pass simply
// does not persist. The only fatal condition is a target without an HTML
// suffix when the force override is off.
func (e *Engine) Render(path, namespace string, keys []string, data map[string]any, opts ...RenderOption) Result {
	cfg := &renderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !e.force && !strings.Contains(strings.ToLower(filepath.Ext(path)), "html") {
		return fatalResult(fmt.Errorf("%w: %s", ErrNonHTMLTarget, path))
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.logger.Warn("target file does not exist, nothing to substitute", logger.File(path))
			return recoveredResult(fmt.Errorf("%w: %s", ErrTargetMissing, path))
		}
		e.logger.Error("cannot access target file", logger.File(path), logger.Error(err))
		return recoveredResult(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		e.logger.Error("cannot read target file", logger.File(path), logger.Error(err))
		return recoveredResult(err)
	}

	content := string(raw)
	replaced := 0
	for _, key := range keys {
		token := Token(namespace, key)
		if !strings.Contains(content, token) {
			continue
		}

		text := i18n.Resolve(key, data, token)
		if text == token {
			// Unresolvable: the token stays verbatim, visibly unresolved.
			e.logger.Debug("token left unresolved", logger.Namespace(namespace), logger.Key(key))
			continue
		}
		if cfg.valueFilter != nil {
			text = cfg.valueFilter(text)
		}
		if e.renderValue != nil {
			text = e.renderValue(text)
		}

		content = strings.ReplaceAll(content, token, text)
		replaced++
	}

	if replaced == 0 {
		return okResult(0)
	}

	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		// Soft failure: the pass does not persist, the run continues.
		e.logger.Error("cannot write target file, pass not persisted",
			logger.File(path), logger.Error(err))
		return recoveredResult(err)
	}

	e.logger.Debug("substitution pass complete",
		logger.File(path), logger.Namespace(namespace), slog.Int("replaced", replaced))
	return okResult(replaced)
}

// Sweep replaces every (namespace, key) token occurring in text with its
// resolved value, using the same fallback rule as Render. It operates on a
// string instead of a file; the pipeline uses it to substitute environment
// tokens inside resolved language values.
func Sweep(text, namespace string, keys []string, data map[string]any) string {
	for _, key := range keys {
		token := Token(namespace, key)
		if !strings.Contains(text, token) {
			continue
		}
		text = strings.ReplaceAll(text, token, i18n.Resolve(key, data, token))
	}
	return text
}
