package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/i18n"
)

func TestFlattenKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data map[string]any
		want []string
	}{
		{
			name: "single nested leaf",
			data: map[string]any{"a": map[string]any{"b": "X"}},
			want: []string{"a.b"},
		},
		{
			name: "mixed depths sorted",
			data: map[string]any{
				"page": map[string]any{
					"title": "Home",
					"nav": map[string]any{
						"about": "About",
						"home":  "Home",
					},
				},
				"footer": "(c)",
			},
			want: []string{"footer", "page.nav.about", "page.nav.home", "page.title"},
		},
		{
			name: "falsy leaves still emit keys",
			data: map[string]any{
				"empty": "",
				"zero":  0,
				"no":    false,
				"null":  nil,
			},
			want: []string{"empty", "no", "null", "zero"},
		},
		{
			name: "empty nested map yields nothing for its branch",
			data: map[string]any{
				"a": map[string]any{},
				"b": "kept",
			},
			want: []string{"b"},
		},
		{
			name: "segments trimmed and empty segments dropped",
			data: map[string]any{
				" a ": map[string]any{
					"  ": map[string]any{"b": "v"},
				},
			},
			want: []string{"a.b"},
		},
		{
			name: "whitespace-only top-level key dropped entirely",
			data: map[string]any{"   ": "v"},
			want: []string{},
		},
		{
			name: "duplicate keys after trimming collapse",
			data: map[string]any{
				"a ": map[string]any{"b": "one"},
				"a":  map[string]any{"b ": "two"},
			},
			want: []string{"a.b"},
		},
		{
			name: "yaml-style any-keyed nested map",
			data: map[string]any{
				"a": map[any]any{
					"b": "X",
					42:  "ignored",
				},
			},
			want: []string{"a.b"},
		},
		{
			name: "empty input",
			data: map[string]any{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := i18n.FlattenKeys(tt.data)
			assert.ElementsMatch(t, tt.want, got)
			assert.IsIncreasing(t, got)
		})
	}
}

func TestFlattenKeysRoundTrip(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"site": map[string]any{
			"title":    "Example",
			"visitors": 1024,
			"beta":     true,
			"ratio":    1.5,
		},
		"labels": map[string]any{
			"empty": "",
			"deep": map[string]any{
				"leaf": "value",
			},
		},
	}

	keys := i18n.FlattenKeys(data)
	require.NotEmpty(t, keys)

	// Every flattened key must resolve against the map it came from; the
	// fallback is never observed for keys the flattener produced.
	for _, key := range keys {
		got := i18n.Resolve(key, data, "\x00fallback")
		assert.NotEqual(t, "\x00fallback", got, "key %q did not round-trip", key)
	}

	assert.Equal(t, "1024", i18n.Resolve("site.visitors", data, "FB"))
	assert.Equal(t, "true", i18n.Resolve("site.beta", data, "FB"))
	assert.Equal(t, "", i18n.Resolve("labels.empty", data, "FB"))
}

func TestJoinKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{name: "plain segments", segments: []string{"a", "b", "c"}, want: "a.b.c"},
		{name: "trims whitespace and dots", segments: []string{" a.", ".b "}, want: "a.b"},
		{name: "drops empty segments", segments: []string{"a", "  ", "b"}, want: "a.b"},
		{name: "all empty", segments: []string{"", " ", "."}, want: ""},
		{name: "no segments", segments: nil, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, i18n.JoinKey(tt.segments...))
		})
	}
}
