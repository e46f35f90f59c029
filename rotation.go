package levelmesh

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Rotation is a 3-axis Euler rotation in degrees. It is applied around Z
// first, then X, then Y, all about the origin of the centered mesh.
type Rotation struct {
	X, Y, Z float64
}

// IsZero reports whether the rotation leaves points unchanged.
func (r Rotation) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Z == 0
}

// rotation3 is a row-major 3x3 rotation matrix.
type rotation3 [9]float64

// matrix returns the combined matrix Ry * Rx * Rz.
func (r Rotation) matrix() rotation3 {
	if r.IsZero() {
		return rotation3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	}
	toRad := math.Pi / 180
	sx, cx := math.Sincos(r.X * toRad)
	sy, cy := math.Sincos(r.Y * toRad)
	sz, cz := math.Sincos(r.Z * toRad)

	rx := rotation3{
		1, 0, 0,
		0, cx, -sx,
		0, sx, cx,
	}
	ry := rotation3{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	}
	rz := rotation3{
		cz, -sz, 0,
		sz, cz, 0,
		0, 0, 1,
	}
	return ry.mul(rx).mul(rz)
}

func (a rotation3) mul(b rotation3) rotation3 {
	var out rotation3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = a[row*3]*b[col] + a[row*3+1]*b[3+col] + a[row*3+2]*b[6+col]
		}
	}
	return out
}

func (a rotation3) apply(x, y, z float64) (float64, float64, float64) {
	return a[0]*x + a[1]*y + a[2]*z,
		a[3]*x + a[4]*y + a[5]*z,
		a[6]*x + a[7]*y + a[8]*z
}

// Mat3 returns the rotation as a row-major float32 matrix, the form a
// renderer uploads.
func (r Rotation) Mat3() f32.Mat3 {
	m := r.matrix()
	var out f32.Mat3
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// placement maps centered illustration coordinates into world space:
// scale, then rotate. It is shared by the floor and wall builders.
type placement struct {
	center Point
	scale  float64
	rot    rotation3
	rotate bool
}

func newPlacement(center Point, scale float64, r Rotation) placement {
	return placement{
		center: center,
		scale:  scale,
		rot:    r.matrix(),
		rotate: !r.IsZero(),
	}
}

// world maps the illustration point p lifted to height y into world space.
// The illustration's Y axis is mirrored onto -Z.
func (pl placement) world(p Point, y float64) f32.Vec3 {
	x := (p.X - pl.center.X) * pl.scale
	z := -(p.Y - pl.center.Y) * pl.scale
	y *= pl.scale
	if pl.rotate {
		x, y, z = pl.rot.apply(x, y, z)
	}
	return f32.Vec3{float32(x), float32(y), float32(z)}
}
