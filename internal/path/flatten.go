// Package path provides curve flattening for the tessellator.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// DefaultTolerance is used when a Flattener has no positive Tolerance.
const DefaultTolerance = 0.1

// maxDepth bounds the subdivision of a single curve.
const maxDepth = 16

// Flattener converts Bezier curves into polylines.
//
// A piece of curve is accepted as one line segment when its control points
// lie within Tolerance of the chord, its tangent turns by at most MaxAngle
// and the chord is at most MaxStep long. Pieces whose parameter interval is
// already MinStep wide are accepted as they are. Non-positive MaxAngle,
// MaxStep and MinStep disable the corresponding criterion.
type Flattener struct {
	Tolerance float64
	MaxAngle  float64
	MaxStep   float64
	MinStep   float64
}

func (f Flattener) tolerance() float64 {
	if f.Tolerance > 0 {
		return f.Tolerance
	}
	return DefaultTolerance
}

// AppendQuadratic flattens the quadratic curve p0-p1-p2 and appends the
// resulting points to dst. p0 is not appended; p2 always is.
func (f Flattener) AppendQuadratic(dst []Point, p0, p1, p2 Point) []Point {
	// Degree elevation is exact.
	c1 := p0.Lerp(p1, 2.0/3)
	c2 := p2.Lerp(p1, 2.0/3)
	return f.AppendCubic(dst, p0, c1, c2, p2)
}

// AppendCubic flattens the cubic curve p0-p1-p2-p3 and appends the
// resulting points to dst. p0 is not appended; p3 always is.
func (f Flattener) AppendCubic(dst []Point, p0, p1, p2, p3 Point) []Point {
	return f.cubicRec(dst, p0, p1, p2, p3, 1, 0)
}

func (f Flattener) cubicRec(dst []Point, p0, p1, p2, p3 Point, span float64, depth int) []Point {
	if depth >= maxDepth || (f.MinStep > 0 && span <= f.MinStep) || f.flatEnough(p0, p1, p2, p3) {
		return append(dst, p3)
	}

	// Subdivide the curve using de Casteljau's algorithm
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = f.cubicRec(dst, p0, q0, r0, s, span/2, depth+1)
	return f.cubicRec(dst, s, r1, q2, p3, span/2, depth+1)
}

func (f Flattener) flatEnough(p0, p1, p2, p3 Point) bool {
	tol := f.tolerance()
	if math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3)) >= tol {
		return false
	}
	if f.MaxStep > 0 && p0.Distance(p3) > f.MaxStep {
		return false
	}
	if f.MaxAngle > 0 && tangentTurn(p0, p1, p2, p3) > f.MaxAngle {
		return false
	}
	return true
}

// tangentTurn returns the angle between the start and end tangents of a
// cubic curve, in radians.
func tangentTurn(p0, p1, p2, p3 Point) float64 {
	start := p1.Sub(p0)
	if start.Length() < 1e-12 {
		start = p2.Sub(p0)
	}
	end := p3.Sub(p2)
	if end.Length() < 1e-12 {
		end = p3.Sub(p1)
	}
	ls, le := start.Length(), end.Length()
	if ls < 1e-12 || le < 1e-12 {
		return 0
	}
	cos := start.Dot(end) / (ls * le)
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// Helper methods for Point

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// distanceToLine calculates the perpendicular distance from point p to line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	// Vector from a to b
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		// Line segment is a point
		return p.Distance(a)
	}

	// Project p onto the line
	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		// Closest point is a
		return p.Distance(a)
	}
	if t > 1 {
		// Closest point is b
		return p.Distance(b)
	}

	// Closest point is on the line segment
	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
