package flyer

import "strings"

// Inch is one inch in points.
const Inch = 72.0

// Optional content layer names.
const (
	LayerBorder = "border"
	LayerImages = "images"
	LayerText   = "text"
	LayerStars  = "stars"
)

// Size is a page size in points.
type Size struct {
	W, H float64
}

// Box is an axis-aligned rectangle anchored at its bottom-left corner.
type Box struct {
	X, Y, W, H float64
}

var pageSizes = map[string]Size{
	"a3":     {W: 841.89, H: 1190.55},
	"a4":     {W: 595.28, H: 841.89},
	"a5":     {W: 420.94, H: 595.28},
	"letter": {W: 612, H: 792},
	"legal":  {W: 612, H: 1008},
}

// PageSize resolves a named portrait page size, case-insensitively.
func PageSize(name string) (Size, bool) {
	s, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Element is one drawable item on the page.
type Element interface {
	Kind() string
	LayerName() string
}

// RectElement strokes a rectangle outline.
type RectElement struct {
	Box   Box
	Style Style
	Layer string
}

// TextElement draws a single line centered horizontally on X with its
// baseline at Baseline.
type TextElement struct {
	Text     string
	X        float64
	Baseline float64
	Style    Style
	Layer    string
}

// StarElement fills and strokes a star.
type StarElement struct {
	Star  StarSpec
	Style Style
	Layer string
}

// ImageElement places an optional image. The image is read from Path; Data
// is used instead when Path does not exist. With neither available the
// element is skipped.
type ImageElement struct {
	Name  string
	Path  string
	Data  []byte
	Box   Box
	Layer string
}

func (RectElement) Kind() string  { return "rect" }
func (TextElement) Kind() string  { return "text" }
func (StarElement) Kind() string  { return "star" }
func (ImageElement) Kind() string { return "image" }

func (e RectElement) LayerName() string  { return e.Layer }
func (e TextElement) LayerName() string  { return e.Layer }
func (e StarElement) LayerName() string  { return e.Layer }
func (e ImageElement) LayerName() string { return e.Layer }

// Layout is a fully positioned page.
type Layout struct {
	Size     Size
	Elements []Element
}

// Layers returns the distinct layer names in first-use order.
func (l Layout) Layers() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, el := range l.Elements {
		name := el.LayerName()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

const (
	borderInset  = 0.25 * Inch
	logoSize     = 2.2 * Inch
	logoTop      = 2.5 * Inch
	titleTopY    = 3.2 * Inch
	starRowY     = 3.7 * Inch
	starSpacing  = 0.625 * Inch
	starRadius   = 18.0
	titleBottomY = 4.3 * Inch
	messageY     = 4.9 * Inch
	messageLeadY = 0.3 * Inch
	qrSize       = 3.6 * Inch
	qrTop        = 5.6 * Inch
	footerY      = 1.4 * Inch
	taglineY     = 1.0 * Inch
)

// GymFlyer positions content on a page of the given size. Vertical positions
// are measured from the top edge for the upper block and from the bottom edge
// for the footer. A nil theme selects DefaultTheme.
func GymFlyer(size Size, content Content, t Theme) Layout {
	if t == nil {
		t = DefaultTheme()
	}
	st := t.Styles()
	w, h := size.W, size.H
	cx := w / 2
	l := Layout{Size: size}
	text := func(s string, baseline float64, style Style) {
		if s == "" {
			return
		}
		l.Elements = append(l.Elements, TextElement{
			Text:     s,
			X:        cx,
			Baseline: baseline,
			Style:    style,
			Layer:    LayerText,
		})
	}

	l.Elements = append(l.Elements, RectElement{
		Box:   Box{X: borderInset, Y: borderInset, W: w - 2*borderInset, H: h - 2*borderInset},
		Style: st.Border,
		Layer: LayerBorder,
	})
	l.Elements = append(l.Elements, ImageElement{
		Name:  "logo",
		Path:  content.LogoPath,
		Box:   Box{X: (w - logoSize) / 2, Y: h - logoTop, W: logoSize, H: logoSize},
		Layer: LayerImages,
	})

	text(content.TitleTop, h-titleTopY, st.Title)

	first := cx - float64(content.StarCount-1)*starSpacing/2
	for i := 0; i < content.StarCount; i++ {
		center := Point{X: first + float64(i)*starSpacing, Y: h - starRowY}
		l.Elements = append(l.Elements, StarElement{
			Star:  NewStarSpec(center, starRadius),
			Style: st.Star,
			Layer: LayerStars,
		})
	}

	text(content.TitleBottom, h-titleBottomY, st.Title)
	for i, line := range content.Message {
		text(line, h-messageY-float64(i)*messageLeadY, st.Message)
	}

	l.Elements = append(l.Elements, ImageElement{
		Name:  "qr",
		Path:  content.QRPath,
		Data:  content.QRData,
		Box:   Box{X: (w - qrSize) / 2, Y: h - qrTop - qrSize, W: qrSize, H: qrSize},
		Layer: LayerImages,
	})

	text(content.Footer, footerY, st.Footer)
	text(content.Tagline, taglineY, st.Tagline)
	return l
}
