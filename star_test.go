package flyer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tol = 1e-9

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestBuildStarPathVertexCount(t *testing.T) {
	for _, r := range []float64{0.5, 1, 18, 250} {
		if got := len(BuildStarPath(Point{X: 3, Y: -4}, r)); got != 2*StarPoints {
			t.Fatalf("radius %v: got %d vertices, want %d", r, got, 2*StarPoints)
		}
	}
}

func TestBuildStarPathRadii(t *testing.T) {
	center := Point{X: 100, Y: 200}
	const r = 18.0
	for i, p := range BuildStarPath(center, r) {
		want := r
		if i%2 == 1 {
			want = r * StarInnerRatio
		}
		if d := dist(center, p); math.Abs(d-want) > tol*want {
			t.Fatalf("vertex %d at distance %v, want %v", i, d, want)
		}
	}
}

func TestBuildStarPathFirstTipIsUp(t *testing.T) {
	path := BuildStarPath(Point{X: 100, Y: 200}, 18)
	want := Point{X: 100, Y: 218}
	if diff := cmp.Diff(want, path[0], cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("vertex 0 mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStarPathUniformSpacing(t *testing.T) {
	center := Point{X: -7, Y: 11}
	path := BuildStarPath(center, 30)
	angle := func(p Point) float64 {
		// Page space is y-up; the builder measures angles y-down.
		return math.Atan2(-(p.Y - center.Y), p.X-center.X)
	}
	step := 2 * math.Pi / StarPoints
	for i := 0; i < 2*StarPoints; i += 2 {
		next := (i + 2) % (2 * StarPoints)
		delta := math.Mod(angle(path[next])-angle(path[i])+4*math.Pi, 2*math.Pi)
		if math.Abs(delta-step) > tol {
			t.Fatalf("outer vertices %d->%d advance %v rad, want %v", i, next, delta, step)
		}
	}
}

func TestBuildStarPathClosedFormVertices(t *testing.T) {
	const r = 18.0
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	path := BuildStarPath(Point{X: 100, Y: 200}, r)
	want := Polygon{
		{X: 100, Y: 218},
		{X: 100 + r*StarInnerRatio*math.Cos(rad(-54)), Y: 200 - r*StarInnerRatio*math.Sin(rad(-54))},
		{X: 100 + r*math.Cos(rad(18)), Y: 200 + r*math.Sin(rad(18))},
	}
	if diff := cmp.Diff(want, path[:3], cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStarPathZeroRadius(t *testing.T) {
	center := Point{X: 4, Y: 5}
	path := BuildStarPath(center, 0)
	want := make(Polygon, 2*StarPoints)
	for i := range want {
		want[i] = center
	}
	if diff := cmp.Diff(want, path, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("degenerate star mismatch (-want +got):\n%s", diff)
	}
}

func TestStarSpecPath(t *testing.T) {
	spec := NewStarSpec(Point{X: 1, Y: 2}, 9)
	if spec.PointCount != StarPoints || spec.InnerRadiusRatio != StarInnerRatio {
		t.Fatalf("unexpected spec constants: %+v", spec)
	}
	if diff := cmp.Diff(BuildStarPath(spec.Center, spec.OuterRadius), spec.Path()); diff != "" {
		t.Fatalf("spec path mismatch (-want +got):\n%s", diff)
	}
}

func TestPolygonBounds(t *testing.T) {
	b := BuildStarPath(Point{X: 0, Y: 0}, 10).Bounds()
	if math.Abs(b.Y+b.H-10) > tol {
		t.Fatalf("expected top edge at tip, got %+v", b)
	}
	if math.Abs(b.W-2*10*math.Cos(18*math.Pi/180)) > tol {
		t.Fatalf("unexpected width %v", b.W)
	}
	if (Polygon{}).Bounds() != (Box{}) {
		t.Fatalf("expected zero box for empty polygon")
	}
}
