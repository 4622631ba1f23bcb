package geometry

import "math"

// Radius is the fixed distance, in pixels, an eye sprite moves away from its anchor.
const Radius = 35.0

// Point is a pixel coordinate. Anchors, pointer positions and displaced
// positions all use it.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Quadrant is the sign combination applied to the displacement.
type Quadrant int

const (
	QuadrantPosPos Quadrant = iota // dx >= 0, dy >= 0
	QuadrantNegNeg                 // dx < 0, dy < 0
	QuadrantPosNeg                 // dx > 0, dy < 0
	QuadrantNegPos                 // every other pair, including dx == 0 with dy < 0
)

func (q Quadrant) String() string {
	switch q {
	case QuadrantPosPos:
		return "+x+y"
	case QuadrantNegNeg:
		return "-x-y"
	case QuadrantPosNeg:
		return "+x-y"
	case QuadrantNegPos:
		return "-x+y"
	}
	return "unknown"
}

// Signs returns the multipliers for the x and y offsets.
func (q Quadrant) Signs() (sx, sy float64) {
	switch q {
	case QuadrantNegNeg:
		return -1, -1
	case QuadrantPosNeg:
		return 1, -1
	case QuadrantNegPos:
		return -1, 1
	default:
		return 1, 1
	}
}

// Classify picks the quadrant for a delta vector. A zero delta counts as
// positive only in the first case; (0, -y) falls through to NegPos.
func Classify(dx, dy float64) Quadrant {
	switch {
	case dx >= 0 && dy >= 0:
		return QuadrantPosPos
	case dx < 0 && dy < 0:
		return QuadrantNegNeg
	case dx > 0:
		return QuadrantPosNeg
	default:
		return QuadrantNegPos
	}
}

// Displace returns where a sprite resting at anchor should be drawn so that it
// "looks at" pointer. The result is always Radius away from anchor, except when
// pointer sits exactly on anchor, in which case anchor is returned unchanged.
func Displace(anchor, pointer Point) Point {
	d := pointer.Sub(anchor)
	r := math.Hypot(d.X, d.Y)
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return anchor
	}
	sin := math.Abs(d.X) / r
	cos := math.Abs(d.Y) / r
	sx, sy := Classify(d.X, d.Y).Signs()
	return anchor.Add(Point{sx * Radius * sin, sy * Radius * cos})
}
