package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localize/pkg/i18n"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"a": map[string]any{
			"b": "X",
			"n": 42,
			"f": 1.5,
			"t": true,
			"z": nil,
		},
		"plain": "top",
		"sub": map[string]any{
			"only": "V",
		},
		"anyKeyed": map[any]any{
			"inner": "deep",
		},
	}

	tests := []struct {
		name     string
		key      string
		fallback string
		want     string
	}{
		{name: "nested string leaf", key: "a.b", fallback: "FB", want: "X"},
		{name: "missing leaf", key: "a.c", fallback: "FB", want: "FB"},
		{name: "missing root", key: "nope.b", fallback: "FB", want: "FB"},
		{name: "top-level leaf", key: "plain", fallback: "FB", want: "top"},
		{name: "integer coerced", key: "a.n", fallback: "FB", want: "42"},
		{name: "float coerced", key: "a.f", fallback: "FB", want: "1.5"},
		{name: "bool coerced", key: "a.t", fallback: "FB", want: "true"},
		{name: "nil leaf falls back", key: "a.z", fallback: "FB", want: "FB"},
		{name: "path ends on a mapping coerces it", key: "sub", fallback: "FB", want: "map[only:V]"},
		{name: "scalar hit before path exhausted", key: "plain.deeper", fallback: "FB", want: "FB"},
		{name: "any-keyed mapping traversed", key: "anyKeyed.inner", fallback: "FB", want: "deep"},
		{name: "whitespace around segments ignored", key: " a . b ", fallback: "FB", want: "X"},
		{name: "consecutive dots collapse", key: "a..b", fallback: "FB", want: "X"},
		{name: "empty key", key: "", fallback: "FB", want: "FB"},
		{name: "whitespace-only key", key: "   ", fallback: "FB", want: "FB"},
		{name: "dots-only key", key: "...", fallback: "FB", want: "FB"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, i18n.Resolve(tt.key, data, tt.fallback))
		})
	}
}

func TestResolveNilData(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FB", i18n.Resolve("a.b", nil, "FB"))
}

func TestResolveFallbackReturnedUnchanged(t *testing.T) {
	t.Parallel()

	// The fallback is the caller's placeholder token; it must come back
	// verbatim, whatever it contains.
	fallback := "i18n:some.deeply.nested key"
	assert.Equal(t, fallback, i18n.Resolve("missing.key", map[string]any{}, fallback))
}

func TestSplitKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want []string
	}{
		{name: "simple", key: "a.b.c", want: []string{"a", "b", "c"}},
		{name: "trims segments", key: " a . b ", want: []string{"a", "b"}},
		{name: "drops empty segments", key: "a..b.", want: []string{"a", "b"}},
		{name: "empty key", key: "", want: nil},
		{name: "whitespace-only key", key: "  ", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, i18n.SplitKey(tt.key))
		})
	}
}
