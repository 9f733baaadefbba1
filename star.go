package flyer

import "math"

// Star geometry constants. The flyer always draws conventional five-pointed
// stars whose valleys sit at 40% of the tip radius.
const (
	StarPoints     = 5
	StarInnerRatio = 0.4
	// starRotation puts the first tip at 12 o'clock.
	starRotation = -90.0
)

// Point is a position in page space: origin bottom-left, y up, unit = point.
type Point struct {
	X, Y float64
}

// Polygon is a closed vertex sequence. The last vertex implicitly connects
// back to the first.
type Polygon []Point

// StarSpec describes a star before it is turned into a path.
type StarSpec struct {
	Center           Point
	OuterRadius      float64
	InnerRadiusRatio float64
	PointCount       int
}

// NewStarSpec returns the spec for a flyer star centered at center.
func NewStarSpec(center Point, outerRadius float64) StarSpec {
	return StarSpec{
		Center:           center,
		OuterRadius:      outerRadius,
		InnerRadiusRatio: StarInnerRatio,
		PointCount:       StarPoints,
	}
}

// Path returns the star outline. It is equivalent to BuildStarPath.
func (s StarSpec) Path() Polygon {
	return BuildStarPath(s.Center, s.OuterRadius)
}

// BuildStarPath returns the ten vertices of a five-pointed star, alternating
// between tips at outerRadius and valleys at StarInnerRatio*outerRadius. The
// first vertex is the top tip. A zero radius collapses every vertex onto
// center.
func BuildStarPath(center Point, outerRadius float64) Polygon {
	n := 2 * StarPoints
	step := 360.0 / float64(n)
	path := make(Polygon, 0, n)
	for i := 0; i < n; i++ {
		angle := (float64(i)*step + starRotation) * math.Pi / 180
		radius := outerRadius
		if i%2 == 1 {
			radius = outerRadius * StarInnerRatio
		}
		// Angles are measured with y growing downward; page space grows
		// upward, so the sine term is subtracted.
		path = append(path, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y - radius*math.Sin(angle),
		})
	}
	return path
}

// Bounds returns the smallest box containing every vertex. An empty polygon
// returns the zero Box.
func (p Polygon) Bounds() Box {
	if len(p) == 0 {
		return Box{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
