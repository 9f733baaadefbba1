package flyer

import "testing"

func TestParseHexColor(t *testing.T) {
	cases := map[string]Color{
		"#c6ff00": {R: 0xc6, G: 0xff, B: 0x00},
		"0A1128":  {R: 0x0a, G: 0x11, B: 0x28},
		"#fff":    {R: 0xff, G: 0xff, B: 0xff},
	}
	for in, want := range cases {
		got, err := ParseHexColor(in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseHexColor(%q) = %+v, want %+v", in, got, want)
		}
	}
	for _, bad := range []string{"", "#12345", "#gggggg"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := MustHexColor("#B8860B").RGB()
	if r != 184 || g != 134 || b != 11 {
		t.Fatalf("unexpected rgb %d %d %d", r, g, b)
	}
}
