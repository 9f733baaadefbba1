package flyer

import (
	"sort"
	"strings"

	"pkt.systems/flyer/internal/palette"
)

// Styles groups the semantic styles used by the flyer layout.
type Styles struct {
	Border  Style
	Title   Style
	Star    Style
	Message Style
	Footer  Style
	Tagline Style
}

// Theme provides named styles for the flyer.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Border: Style{
			Stroke:      MustHexColor(p.Frame),
			StrokeWidth: 5,
		},
		Title: Style{
			Fill: MustHexColor(p.Heading),
			Font: Font{Family: "Helvetica", Style: "B", Size: 34},
		},
		Star: Style{
			Fill:        MustHexColor(p.StarFill),
			Stroke:      MustHexColor(p.StarStroke),
			StrokeWidth: 1,
		},
		Message: Style{
			Fill: MustHexColor(p.Body),
			Font: Font{Family: "Helvetica", Size: 18},
		},
		Footer: Style{
			Fill: MustHexColor(p.Heading),
			Font: Font{Family: "Helvetica", Style: "B", Size: 26},
		},
		Tagline: Style{
			Fill: MustHexColor(p.Muted),
			Font: Font{Family: "Helvetica", Style: "I", Size: 14},
		},
	}
}

var themes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette.Brand)},
	"lime":    theme{name: "lime", styles: stylesFromPalette(palette.BrandLime)},
	"boring":  theme{name: "boring", styles: stylesFromPalette(palette.Mono)},
}

// DefaultTheme returns the gym's brand theme.
func DefaultTheme() Theme {
	return themes["default"]
}

// BoringTheme returns the black and grey print theme.
func BoringTheme() Theme {
	return themes["boring"]
}

// ThemeByName looks up a built-in theme. Names are case-insensitive and an
// empty name selects the default theme.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return themes["default"], true
	}
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// AvailableThemes returns the built-in theme names in sorted order.
func AvailableThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
