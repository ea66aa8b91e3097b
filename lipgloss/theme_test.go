package lipgloss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustainlab/esgview"
	"github.com/sustainlab/esgview/lipgloss"
)

func TestThemes(t *testing.T) {
	t.Parallel()

	themes := map[string]*lipgloss.Theme{
		"dark":  lipgloss.DarkTheme(),
		"light": lipgloss.LightTheme(),
	}

	for name, theme := range themes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a := theme.Accents()

			// Every tier needs a distinct foreground so classifications
			// stay distinguishable.
			seen := map[string]bool{}
			for _, pair := range []esgview.ColorPair{a.High, a.Medium, a.Low, a.None, a.Unscored} {
				assert.NotEmpty(t, pair.Foreground)
				assert.False(t, seen[pair.Foreground], "duplicate accent %s", pair.Foreground)
				seen[pair.Foreground] = true
			}

			assert.NotEmpty(t, a.Inconsistent.Foreground)
			assert.NotEmpty(t, a.Consistent.Foreground)
			assert.NotEmpty(t, a.Verified.Foreground)
		})
	}
}

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.DarkTheme().Accents(), lipgloss.DefaultTheme().Accents())
}
