package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/localize/internal/build"
	"github.com/dmitrymomot/localize/pkg/config"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/logger"
)

const (
	appName    = "localize"
	appVersion = "0.1.0"
)

// settings carries the defaults configurable through the environment or a
// .env file. Command line flags override them.
type settings struct {
	LangDir   string `env:"LOCALIZE_LANG_DIR" envDefault:"lang"`
	EnvFile   string `env:"LOCALIZE_ENV_FILE" envDefault:"env.yml"`
	Template  string `env:"LOCALIZE_TEMPLATE" envDefault:"index.template.html"`
	Output    string `env:"LOCALIZE_OUTPUT" envDefault:"index.html"`
	LogLevel  string `env:"LOCALIZE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOCALIZE_LOG_FORMAT" envDefault:"text"`
}

func main() {
	var cfg settings
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:    appName,
		Version: appVersion,
		Usage:   "generate a localized HTML page from a template and YAML dictionaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang-dir",
				Aliases: []string{"d"},
				Usage:   "directory holding the language source files",
				Value:   cfg.LangDir,
			},
			&cli.StringFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "path of the shared environment source file",
				Value:   cfg.EnvFile,
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "template file; its name must contain the literal marker \"template\"",
				Value:   cfg.Template,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "canonical output name offered at the rename step",
				Value:   cfg.Output,
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "language file name to use, skipping the interactive prompt",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "source file format: yaml or json",
				Value: "yaml",
			},
			&cli.BoolFlag{
				Name:  "rename",
				Usage: "rename the output to the canonical name without asking",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "automatically accept any confirmation",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "allow substitutions into files without an HTML suffix",
			},
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "render dictionary values from Markdown to sanitized HTML",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum log level: debug, info, warn, error",
				Value: cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log output format: text or json",
				Value: cfg.LogFormat,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	format := logger.Format(c.String("log-format"))
	if format != logger.FormatText && format != logger.FormatJSON {
		return cli.Exit(fmt.Sprintf("unsupported log format %q", c.String("log-format")), 1)
	}
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(c.String("log-level"))),
		logger.WithFormat(format),
	)

	var parser i18n.Parser
	switch c.String("format") {
	case "yaml", "yml":
		parser = i18n.NewYAMLParser()
	case "json":
		parser = i18n.NewJSONParser()
	default:
		return cli.Exit(fmt.Sprintf("unsupported source format %q", c.String("format")), 1)
	}

	engineOpts := []build.EngineOption{
		build.WithForce(c.Bool("force")),
		build.WithEngineLogger(log),
	}
	if c.Bool("markdown") {
		engineOpts = append(engineOpts, build.WithMarkdown())
	}

	pipelineOpts := []build.PipelineOption{
		build.WithParser(parser),
		build.WithPipelineLogger(log),
		build.WithCanonicalName(c.String("output")),
	}
	if lang := c.String("lang"); lang != "" {
		pipelineOpts = append(pipelineOpts, build.WithLanguage(lang))
	}
	switch {
	case c.Bool("rename") || c.Bool("yes"):
		pipelineOpts = append(pipelineOpts, build.WithRename(true))
	case c.IsSet("rename"):
		pipelineOpts = append(pipelineOpts, build.WithRename(false))
	}

	pipeline := build.NewPipeline(
		c.String("lang-dir"),
		c.String("env-file"),
		c.String("template"),
		build.NewEngine(engineOpts...),
		pipelineOpts...,
	)

	if err := pipeline.Run(c.Context); err != nil {
		if errors.Is(err, build.ErrUnknownLanguage) || errors.Is(err, build.ErrNonHTMLTarget) {
			return cli.Exit(err.Error(), 255)
		}
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
