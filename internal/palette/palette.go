// Package palette holds the named colors used by the flyer themes.
package palette

// Brand colors, as hex strings.
const (
	Lime     = "#c6ff00"
	DarkNavy = "#0a1128"
	Gold     = "#FFD700"
	DarkGold = "#B8860B"
	Black    = "#000000"
	White    = "#FFFFFF"
	Grey     = "#808080"
	Charcoal = "#333333"
)

// Palette groups the colors a theme is derived from.
type Palette struct {
	Frame      string
	Heading    string
	Body       string
	Muted      string
	StarFill   string
	StarStroke string
}

// Brand is the gym's palette.
var Brand = Palette{
	Frame:      DarkNavy,
	Heading:    DarkNavy,
	Body:       Black,
	Muted:      Grey,
	StarFill:   Gold,
	StarStroke: DarkGold,
}

// BrandLime frames the page in the gym's primary lime.
var BrandLime = Palette{
	Frame:      Lime,
	Heading:    DarkNavy,
	Body:       Black,
	Muted:      Grey,
	StarFill:   Gold,
	StarStroke: DarkGold,
}

// Mono is a print-friendly black and grey palette.
var Mono = Palette{
	Frame:      Black,
	Heading:    Black,
	Body:       Black,
	Muted:      Charcoal,
	StarFill:   White,
	StarStroke: Black,
}
