package i18n

import "errors"

var (
	// Parser operations
	ErrParsingCancelled  = errors.New("parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")

	// Source file operations
	ErrNilParser         = errors.New("parser is nil")
	ErrLoadCancelled     = errors.New("loading translation source cancelled")
	ErrFailedToReadFile  = errors.New("failed to read translation source")
	ErrFailedToParseFile = errors.New("failed to parse translation source")
	ErrEmptySource       = errors.New("translation source is empty")

	// Directory operations
	ErrFailedToReadDirectory = errors.New("failed to read language directory")
)
