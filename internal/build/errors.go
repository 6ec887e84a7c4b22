package build

import "errors"

var (
	// Selection
	ErrUnknownLanguage = errors.New("language file is not supported")

	// Output naming preconditions
	ErrNoTemplateMarker    = errors.New("template filename does not contain the template marker")
	ErrEmptyLanguagePrefix = errors.New("language identifier has no portion before the first dot")

	// Substitution
	ErrNonHTMLTarget = errors.New("target file does not have an HTML suffix")
	ErrTargetMissing = errors.New("target file does not exist")
)
