package flyer

import "testing"

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "lime", "boring"} {
		th, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if th.Name() != name {
			t.Fatalf("theme %q reports name %q", name, th.Name())
		}
	}
	if _, ok := ThemeByName("neon"); ok {
		t.Fatalf("expected unknown theme")
	}
	names := AvailableThemes()
	if len(names) != 3 || names[0] != "boring" {
		t.Fatalf("unexpected theme list %v", names)
	}
}

func TestDefaultThemeColors(t *testing.T) {
	s := DefaultTheme().Styles()
	if s.Star.Fill != (Color{R: 0xff, G: 0xd7, B: 0x00}) {
		t.Fatalf("unexpected star fill %s", s.Star.Fill.Hex())
	}
	if s.Star.Stroke.Hex() != "#b8860b" {
		t.Fatalf("unexpected star stroke %s", s.Star.Stroke.Hex())
	}
	if s.Border.Stroke.Hex() != "#0a1128" {
		t.Fatalf("unexpected border %s", s.Border.Stroke.Hex())
	}
	if s.Tagline.Font != (Font{Family: "Helvetica", Style: "I", Size: 14}) {
		t.Fatalf("unexpected tagline font %+v", s.Tagline.Font)
	}
}

func TestBoringThemeIsMonochrome(t *testing.T) {
	s := BoringTheme().Styles()
	for _, st := range []Style{s.Border, s.Title, s.Star, s.Message, s.Footer, s.Tagline} {
		for _, c := range []Color{st.Fill, st.Stroke} {
			if c.R != c.G || c.G != c.B {
				t.Fatalf("expected grey color, got %s", c.Hex())
			}
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	for input, want := range map[string]string{
		"Lime":       "lime",
		" BORING ":   "boring",
		"":           "default",
		"\tdefault": "default",
	} {
		th, ok := ThemeByName(input)
		if !ok {
			t.Fatalf("expected theme for %q", input)
		}
		if th.Name() != want {
			t.Fatalf("ThemeByName(%q)=%q want %q", input, th.Name(), want)
		}
	}
}
