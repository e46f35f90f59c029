package levelmesh

import "math"

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix. A point (x, y) maps to (A*x + B*y + C, D*x + E*y + F).
//
// Node transforms in an illustration tree are Matrix values local to the
// parent node.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a transform moving points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a transform scaling points by x and y about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a transform rotating points about the origin by angle
// radians. With Y growing downward a positive angle turns clockwise on
// screen, as SVG rotate() does.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * other: the result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Compose returns the effective transform of a child node whose parent has
// the effective transform parent: points are mapped by child first, then by
// parent.
func Compose(parent, child Matrix) Matrix {
	return parent.Multiply(child)
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// isZero reports whether the Matrix was never set.
func (m Matrix) isZero() bool {
	return m == Matrix{}
}
