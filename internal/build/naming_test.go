package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/internal/build"
)

func TestLanguagePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "plain identifier", lang: "en.yml", want: "en"},
		{name: "multiple dots", lang: "zh.Hans.yaml", want: "zh"},
		{name: "no dot", lang: "english", want: ""},
		{name: "leading dot", lang: ".yml", want: ""},
		{name: "empty", lang: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, build.LanguagePrefix(tt.lang))
		})
	}
}

func TestDeriveOutputName(t *testing.T) {
	t.Parallel()

	t.Run("replaces marker with language prefix", func(t *testing.T) {
		t.Parallel()

		name, err := build.DeriveOutputName("index.template.html", "en.yml")
		require.NoError(t, err)
		assert.Equal(t, "index.en.html", name)
	})

	t.Run("language identifier without prefix", func(t *testing.T) {
		t.Parallel()

		_, err := build.DeriveOutputName("index.template.html", ".yml")
		assert.ErrorIs(t, err, build.ErrEmptyLanguagePrefix)
	})

	t.Run("template filename without marker", func(t *testing.T) {
		t.Parallel()

		_, err := build.DeriveOutputName("index.html", "en.yml")
		assert.ErrorIs(t, err, build.ErrNoTemplateMarker)
	})
}
