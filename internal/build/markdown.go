package build

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// newMarkdownValueRenderer returns a transform that renders a dictionary
// value from Markdown to HTML and sanitizes the result with the UGC policy,
// so dictionary authors can use emphasis and links without being able to
// inject scripts into the page.
//
// Values are inline fragments, not documents: the single paragraph wrapper
// goldmark emits around a one-line value is stripped so the substituted text
// sits inside whatever markup surrounds the placeholder.
func newMarkdownValueRenderer() func(string) string {
	// Raw HTML passes through goldmark and is handled by the sanitizer,
	// which keeps harmless inline markup authors wrote by hand.
	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	policy := bluemonday.UGCPolicy()

	return func(value string) string {
		var buf bytes.Buffer
		if err := md.Convert([]byte(value), &buf); err != nil {
			// An unrenderable value is substituted verbatim rather than
			// dropped; the output must never lose content.
			return value
		}

		out := strings.TrimSpace(policy.Sanitize(buf.String()))
		if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
			out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
		}
		return out
	}
}
