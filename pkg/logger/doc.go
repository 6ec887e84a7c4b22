// Package logger provides a small factory around Go's slog package plus
// attribute constructors shared across the tool.
//
// The single factory New creates a *slog.Logger configured by functional
// options: output format (text or json), minimum level, destination writer
// and static attributes applied to every record. Text format to stderr is
// the default, which suits an interactive command line tool whose stdout
// carries prompts and status lines.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatJSON),
//	)
//	log.Info("language source loaded", logger.File("en.yml"))
//
// The attribute helpers keep key names consistent so log output stays
// greppable: component, file, lang, namespace, key, error.
package logger
