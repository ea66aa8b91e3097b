// Package lipgloss provides theme implementations using Lipgloss-compatible
// colors.
package lipgloss

import "github.com/sustainlab/esgview"

// Compile-time interface verification.
var _ esgview.Theme = (*Theme)(nil)

// Theme implements esgview.Theme with a fixed accent set.
type Theme struct {
	accents esgview.Accents
}

// Accents returns the display accents for this theme.
func (t *Theme) Accents() esgview.Accents {
	return t.accents
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme for dark terminal backgrounds. Tier colors run
// red → orange → yellow → green, matching the risk ordering: a low numeric
// score means high risk and gets the hottest color.
func DarkTheme() *Theme {
	return &Theme{
		accents: esgview.Accents{
			High:     esgview.ColorPair{Foreground: "#f38ba8"}, // red
			Medium:   esgview.ColorPair{Foreground: "#fab387"}, // orange
			Low:      esgview.ColorPair{Foreground: "#f9e2af"}, // yellow
			None:     esgview.ColorPair{Foreground: "#a6e3a1"}, // green
			Unscored: esgview.ColorPair{Foreground: "#9399b2"},

			Consistent:   esgview.ColorPair{Foreground: "#a6e3a1"},
			Inconsistent: esgview.ColorPair{Foreground: "#f38ba8"},
			Verified:     esgview.ColorPair{Foreground: "#89b4fa"}, // blue badge

			UIBackground: "#313244",
			UIForeground: "#cdd6f4",
			Muted:        "#6c7086",
		},
	}
}

// LightTheme returns a theme for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		accents: esgview.Accents{
			High:     esgview.ColorPair{Foreground: "#d20f39"},
			Medium:   esgview.ColorPair{Foreground: "#fe640b"},
			Low:      esgview.ColorPair{Foreground: "#df8e1d"},
			None:     esgview.ColorPair{Foreground: "#40a02b"},
			Unscored: esgview.ColorPair{Foreground: "#6c6f85"},

			Consistent:   esgview.ColorPair{Foreground: "#40a02b"},
			Inconsistent: esgview.ColorPair{Foreground: "#d20f39"},
			Verified:     esgview.ColorPair{Foreground: "#1e66f5"},

			UIBackground: "#ccd0da",
			UIForeground: "#4c4f69",
			Muted:        "#9ca0b0",
		},
	}
}
