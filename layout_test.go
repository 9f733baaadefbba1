package flyer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func a4(t *testing.T) Size {
	t.Helper()
	size, ok := PageSize("A4")
	if !ok {
		t.Fatalf("A4 missing")
	}
	return size
}

func countKinds(l Layout) map[string]int {
	kinds := make(map[string]int)
	for _, el := range l.Elements {
		kinds[el.Kind()]++
	}
	return kinds
}

func TestGymFlyerElementCounts(t *testing.T) {
	l := GymFlyer(a4(t), DefaultContent(), DefaultTheme())
	want := map[string]int{"rect": 1, "image": 2, "star": 5, "text": 6}
	if diff := cmp.Diff(want, countKinds(l)); diff != "" {
		t.Fatalf("element counts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{LayerBorder, LayerImages, LayerText, LayerStars}, l.Layers()); diff != "" {
		t.Fatalf("layers mismatch (-want +got):\n%s", diff)
	}
}

func TestGymFlyerStarRow(t *testing.T) {
	size := a4(t)
	l := GymFlyer(size, DefaultContent(), DefaultTheme())
	var centers []Point
	for _, el := range l.Elements {
		if s, ok := el.(StarElement); ok {
			if s.Star.OuterRadius != 18 {
				t.Fatalf("unexpected star radius %v", s.Star.OuterRadius)
			}
			centers = append(centers, s.Star.Center)
		}
	}
	firstX := size.W/2 - 1.25*Inch
	for i, c := range centers {
		wantX := firstX + float64(i)*0.625*Inch
		if math.Abs(c.X-wantX) > 1e-9 || math.Abs(c.Y-(size.H-3.7*Inch)) > 1e-9 {
			t.Fatalf("star %d at %+v, want (%v, %v)", i, c, wantX, size.H-3.7*Inch)
		}
	}
}

func TestGymFlyerPositions(t *testing.T) {
	size := a4(t)
	l := GymFlyer(size, DefaultContent(), DefaultTheme())
	baselines := make(map[string]float64)
	images := make(map[string]Box)
	for _, el := range l.Elements {
		switch e := el.(type) {
		case TextElement:
			baselines[e.Text] = e.Baseline
			if e.X != size.W/2 {
				t.Fatalf("text %q not centered", e.Text)
			}
		case ImageElement:
			images[e.Name] = e.Box
		case RectElement:
			want := Box{X: 18, Y: 18, W: size.W - 36, H: size.H - 36}
			if e.Box != want {
				t.Fatalf("border %+v, want %+v", e.Box, want)
			}
			if e.Style.StrokeWidth != 5 {
				t.Fatalf("unexpected border width %v", e.Style.StrokeWidth)
			}
		}
	}
	wantBaselines := []struct {
		text string
		want float64
	}{
		{"¡APÓYANOS CON TUS", size.H - 3.2*Inch},
		{"ESTRELLAS!", size.H - 4.3*Inch},
		{"Tu apoyo nos ayuda a seguir creciendo.", size.H - 4.9*Inch},
		{"Escanea el código para dejarnos tu comentario.", size.H - 5.2*Inch},
		{"ATHLETIC GYM", 1.4 * Inch},
		{"¡Gracias por ser parte de la familia!", 1.0 * Inch},
	}
	for _, tc := range wantBaselines {
		got, ok := baselines[tc.text]
		if !ok {
			t.Fatalf("missing text %q", tc.text)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("text %q baseline %v, want %v", tc.text, got, tc.want)
		}
	}
	logo := images["logo"]
	if math.Abs(logo.Y-(size.H-2.5*Inch)) > 1e-9 || logo.W != 2.2*Inch || logo.H != 2.2*Inch {
		t.Fatalf("unexpected logo box %+v", logo)
	}
	qr := images["qr"]
	if math.Abs(qr.Y+qr.H-(size.H-5.6*Inch)) > 1e-9 || qr.W != 3.6*Inch {
		t.Fatalf("unexpected qr box %+v", qr)
	}
	if math.Abs(qr.X+qr.W/2-size.W/2) > 1e-9 {
		t.Fatalf("qr not centered: %+v", qr)
	}
}

func TestGymFlyerSkipsEmptyText(t *testing.T) {
	content := DefaultContent()
	content.Tagline = ""
	content.Message = nil
	content.StarCount = 3
	kinds := countKinds(GymFlyer(a4(t), content, nil))
	if kinds["text"] != 3 || kinds["star"] != 3 {
		t.Fatalf("unexpected element counts %v", kinds)
	}
}

func TestGymFlyerCarriesQRData(t *testing.T) {
	content := DefaultContent()
	content.QRData = []byte{1, 2, 3}
	for _, el := range GymFlyer(a4(t), content, nil).Elements {
		if img, ok := el.(ImageElement); ok && img.Name == "qr" {
			if img.Path != DefaultQRPath || len(img.Data) != 3 {
				t.Fatalf("unexpected qr element %+v", img)
			}
			return
		}
	}
	t.Fatalf("qr element missing")
}

func TestPageSize(t *testing.T) {
	size, ok := PageSize(" letter ")
	if !ok || size != (Size{W: 612, H: 792}) {
		t.Fatalf("unexpected letter size %+v ok=%v", size, ok)
	}
	if _, ok := PageSize("B9"); ok {
		t.Fatalf("expected unknown page size")
	}
}

func TestStarCountIsIndependentOfStarPoints(t *testing.T) {
	if got := DefaultContent().StarCount; got != DefaultStarCount {
		t.Fatalf("default star count %d, want %d", got, DefaultStarCount)
	}
	content := DefaultContent()
	content.StarCount = 7
	l := GymFlyer(a4(t), content, DefaultTheme())
	stars := 0
	for _, el := range l.Elements {
		star, ok := el.(StarElement)
		if !ok {
			continue
		}
		stars++
		if star.Star.PointCount != StarPoints {
			t.Fatalf("star has %d points, want %d", star.Star.PointCount, StarPoints)
		}
	}
	if stars != 7 {
		t.Fatalf("expected 7 stars, got %d", stars)
	}
}
