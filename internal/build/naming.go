package build

import (
	"fmt"
	"strings"
)

// TemplateMarker is the literal substring of the template filename that is
// replaced by the language prefix to form the output filename.
const TemplateMarker = "template"

// LanguagePrefix returns the portion of a language identifier before its
// first dot. An identifier with no dot, or one starting with a dot, has no
// usable prefix and yields "".
func LanguagePrefix(lang string) string {
	i := strings.Index(lang, ".")
	if i <= 0 {
		return ""
	}
	return lang[:i]
}

// DeriveOutputName derives the output filename from the template filename
// by replacing the template marker with the language identifier's prefix.
//
// Both preconditions are configuration errors, checked before any file is
// created: the template filename must contain the marker, and the language
// identifier must have a non-empty prefix. Producing a silently wrong name
// is worse than refusing to run.
func DeriveOutputName(templateName, lang string) (string, error) {
	prefix := LanguagePrefix(lang)
	if prefix == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyLanguagePrefix, lang)
	}
	if !strings.Contains(templateName, TemplateMarker) {
		return "", fmt.Errorf("%w: %q", ErrNoTemplateMarker, templateName)
	}
	return strings.ReplaceAll(templateName, TemplateMarker, prefix), nil
}
