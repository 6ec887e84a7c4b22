package build

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/statemachine"
)

// Pipeline states. Every run walks them strictly in order; a failed step
// leaves the machine where it was.
const (
	StateIdle        = statemachine.State("idle")
	StateLoaded      = statemachine.State("loaded")
	StateSelected    = statemachine.State("selected")
	StateSubstituted = statemachine.State("substituted")
	StateFinalized   = statemachine.State("finalized")

	eventLoad       = statemachine.Event("load")
	eventSelect     = statemachine.Event("select")
	eventSubstitute = statemachine.Event("substitute")
	eventFinalize   = statemachine.Event("finalize")
)

// Pipeline drives one localization run: load the catalog, select a language,
// materialize the output file from the template, substitute environment then
// language tokens, and optionally rename the result to the canonical name.
type Pipeline struct {
	parser  i18n.Parser
	catalog *i18n.Catalog
	engine  *Engine
	sm      *statemachine.Machine
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger

	langDir       string
	envFile       string
	templateFile  string
	canonicalName string

	preselected  string
	renameChoice *bool

	lang       string
	outputFile string
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithParser sets the source parser. Defaults to the YAML parser.
func WithParser(parser i18n.Parser) PipelineOption {
	return func(p *Pipeline) {
		if parser != nil {
			p.parser = parser
		}
	}
}

// WithInput sets the reader console prompts are answered from. Defaults to
// standard input.
func WithInput(r io.Reader) PipelineOption {
	return func(p *Pipeline) {
		if r != nil {
			p.in = bufio.NewScanner(r)
		}
	}
}

// WithConsole sets the writer prompts and status lines are printed to.
// Defaults to standard output.
func WithConsole(w io.Writer) PipelineOption {
	return func(p *Pipeline) {
		if w != nil {
			p.out = w
		}
	}
}

// WithPipelineLogger provides a logger for run progress.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithLanguage preselects the language identifier, skipping the interactive
// prompt.
func WithLanguage(lang string) PipelineOption {
	return func(p *Pipeline) {
		p.preselected = lang
	}
}

// WithRename predetermines the rename-to-canonical choice, skipping the
// interactive prompt.
func WithRename(rename bool) PipelineOption {
	return func(p *Pipeline) {
		p.renameChoice = &rename
	}
}

// WithCanonicalName overrides the canonical output name the user may rename
// the result to. Defaults to "index.html".
func WithCanonicalName(name string) PipelineOption {
	return func(p *Pipeline) {
		if name != "" {
			p.canonicalName = name
		}
	}
}

// NewPipeline creates a run pipeline over the given sources and template.
func NewPipeline(langDir, envFile, templateFile string, engine *Engine, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		parser:        i18n.NewYAMLParser(),
		engine:        engine,
		in:            bufio.NewScanner(os.Stdin),
		out:           os.Stdout,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		langDir:       langDir,
		envFile:       envFile,
		templateFile:  templateFile,
		canonicalName: "index.html",
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("pipeline"))

	p.sm = statemachine.MustNew(StateIdle,
		statemachine.WithTransition(StateIdle, StateLoaded, eventLoad,
			statemachine.WithAction(p.loadAction),
		),
		statemachine.WithTransition(StateLoaded, StateSelected, eventSelect,
			statemachine.WithGuard(p.selectionGuard),
			statemachine.WithAction(p.selectAction),
		),
		statemachine.WithTransition(StateSelected, StateSubstituted, eventSubstitute,
			statemachine.WithAction(p.substituteAction),
		),
		statemachine.WithTransition(StateSubstituted, StateFinalized, eventFinalize,
			statemachine.WithAction(p.finalizeAction),
		),
	)

	return p
}

// Run executes the whole pipeline. The returned error wraps
// ErrUnknownLanguage when the selected language is not in the discovered
// set, and ErrNonHTMLTarget when the suffix guard stopped a substitution
// pass; the command layer maps both to exit status 255.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	if err := p.sm.Fire(ctx, eventLoad, nil); err != nil {
		return err
	}

	lang, err := p.chooseLanguage()
	if err != nil {
		return err
	}
	if !p.sm.CanFire(ctx, eventSelect, lang) {
		fmt.Fprintln(p.out, "The language file is not supported!")
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if err := p.sm.Fire(ctx, eventSelect, lang); err != nil {
		return err
	}

	if err := p.sm.Fire(ctx, eventSubstitute, nil); err != nil {
		return err
	}
	if err := p.sm.Fire(ctx, eventFinalize, nil); err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Task finished! Output file is %s.\n", p.outputFile)
	p.logger.Info("run finished", logger.File(p.outputFile), logger.Duration(time.Since(start)))
	return nil
}

// State returns the pipeline's current state.
func (p *Pipeline) State() statemachine.State {
	return p.sm.Current()
}

// OutputFile returns the materialized output file name. Empty before the
// Selected state is reached.
func (p *Pipeline) OutputFile() string {
	return p.outputFile
}

func (p *Pipeline) loadAction(ctx context.Context, _, _ statemachine.State, _ statemachine.Event, _ any) error {
	envStatus := "ok."
	if _, err := os.Stat(p.envFile); err != nil {
		envStatus = "missing!"
	}
	fmt.Fprintf(p.out, "Checking environment source: %s\n", envStatus)
	fmt.Fprintln(p.out, "Detecting supported language files...")

	catalog, err := i18n.LoadCatalog(ctx, p.langDir, p.envFile, p.parser, i18n.WithLogger(p.logger))
	if err != nil {
		return err
	}
	p.catalog = catalog

	for _, name := range catalog.Languages() {
		if label := languageLabel(name); label != "" {
			fmt.Fprintf(p.out, "- %s (%s)\n", name, label)
		} else {
			fmt.Fprintf(p.out, "- %s\n", name)
		}
	}
	fmt.Fprintln(p.out, "Loaded actual texts.")
	return nil
}

// selectionGuard admits only language identifiers present in the catalog.
func (p *Pipeline) selectionGuard(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	lang, ok := data.(string)
	return ok && p.catalog != nil && p.catalog.Has(lang)
}

func (p *Pipeline) selectAction(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	lang := data.(string)
	fmt.Fprintf(p.out, "You selected language: %s\n", lang)

	// The marker is replaced in the filename only; a directory that happens
	// to contain the marker text stays untouched.
	outputName, err := DeriveOutputName(filepath.Base(p.templateFile), lang)
	if err != nil {
		return err
	}
	outputFile := filepath.Join(filepath.Dir(p.templateFile), outputName)

	if _, err := os.Stat(outputFile); err == nil {
		fmt.Fprintln(p.out, "WARN: You will be overriding a present HTML file!")
	}

	if err := copyFile(p.templateFile, outputFile); err != nil {
		return fmt.Errorf("materializing output file: %w", err)
	}

	p.lang = lang
	p.outputFile = outputFile
	p.logger.Info("output file materialized",
		logger.File(outputFile), logger.Language(lang))
	return nil
}

func (p *Pipeline) substituteAction(_ context.Context, _, _ statemachine.State, _ statemachine.Event, _ any) error {
	env := p.catalog.Env()
	if res := p.engine.Render(p.outputFile, NamespaceEnv, env.Keys, env.Data); res.Fatal() {
		return res.Err
	}
	fmt.Fprintln(p.out, "Replaced environment texts!")

	entry, _ := p.catalog.Language(p.lang)
	// Environment values are foundational: a language value carrying a
	// literal env token gets that token substituted before it lands in the
	// file.
	envSweep := func(value string) string {
		return Sweep(value, NamespaceEnv, env.Keys, env.Data)
	}
	if res := p.engine.Render(p.outputFile, NamespaceI18n, entry.Keys, entry.Data, WithValueFilter(envSweep)); res.Fatal() {
		return res.Err
	}
	fmt.Fprintln(p.out, "Replaced i18n texts!")
	return nil
}

func (p *Pipeline) finalizeAction(_ context.Context, _, _ statemachine.State, _ statemachine.Event, _ any) error {
	rename := false
	if p.renameChoice != nil {
		rename = *p.renameChoice
	} else {
		fmt.Fprintf(p.out, "Rename to `%s`? (N/y) ", p.canonicalName)
		answer := strings.ToLower(strings.TrimSpace(p.readLine()))
		rename = answer == "y" || answer == "yes"
	}

	canonical := filepath.Join(filepath.Dir(p.outputFile), p.canonicalName)
	if !rename || p.outputFile == canonical {
		return nil
	}

	if err := os.Rename(p.outputFile, canonical); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}
	p.outputFile = canonical
	return nil
}

func (p *Pipeline) chooseLanguage() (string, error) {
	if p.preselected != "" {
		return p.preselected, nil
	}
	fmt.Fprint(p.out, "Type language file name: ")
	return strings.TrimSpace(p.readLine()), nil
}

func (p *Pipeline) readLine() string {
	if p.in.Scan() {
		return p.in.Text()
	}
	return ""
}

// languageLabel resolves a human-readable name for a language source file
// from the portion of its name before the first dot. Best effort: a prefix
// that is not a valid language tag yields "".
func languageLabel(name string) string {
	prefix := LanguagePrefix(name)
	if prefix == "" {
		return ""
	}
	tag, err := language.Parse(prefix)
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}
